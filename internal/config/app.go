package config

type AppConfig struct {
	Season SeasonConfig
	Store  StoreConfig
	Log    LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	seasonCfg, err := LoadSeason()
	if err != nil {
		return AppConfig{}, err
	}
	storeCfg, err := LoadStore()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Season: seasonCfg,
		Store:  storeCfg,
		Log:    logCfg,
	}, nil
}

package config

import "github.com/spf13/viper"

// Config - структура для хранения конфигураций приложения
type Config struct {
	ServerAddress     string `mapstructure:"SERVER_ADDRESS"`
	PostgresConn      string `mapstructure:"POSTGRES_CONN"`
	MigrationURL      string `mapstructure:"MIGRATION_URL"`
	FilestoreURL      string `mapstructure:"FILESTORE_URL"`
	NoticeLinkURL     string `mapstructure:"NOTICE_LINK_URL"`
	LotLinkURL        string `mapstructure:"LOT_LINK_URL"`
	AttachmentStemMax int    `mapstructure:"ATTACHMENT_STEM_MAX"`
	AttachmentDir     string `mapstructure:"ATTACHMENT_DIR"`
}

// LoadConfig загружает конфигурацию из файла
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.SetDefault("ATTACHMENT_STEM_MAX", 100)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}
	err = viper.Unmarshal(&cfg)
	return
}

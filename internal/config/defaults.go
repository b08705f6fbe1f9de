package config

import "time"

// Default values mirror the tool's original deployment: a local web page on
// port 5000, an "app.db" SQLite file next to the binary, an "items.DB"
// Paradox catalog in windows-1251, and a five-minute catalog cache.
const (
	DefaultHTTPAddress    = "localhost:5000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDBPath         = "app.db"
	DefaultTablePath      = "items.DB"
	DefaultEncoding       = "windows-1251"
	DefaultCacheTTL       = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{Path: DefaultDBPath},
		},
		Catalog: Catalog{
			TablePath: DefaultTablePath,
			Encoding:  DefaultEncoding,
			CacheTTL:  DefaultCacheTTL,
		},
		Export: Export{
			Title:       "НАЦИОНАЛНА АГЕНЦИЯ ЗА ПРИХОДИТЕ",
			Subtitle:    "ЦЕНТРАЛНО УПРАВЛЕНИЕ",
			Directorate: "ГЛАВНА ДИРЕКЦИЯ “ФИСКАЛЕН КОНТРОЛ“",
			Address:     "1000 София. бул. “Княз Дондуков“ №52 Телефон: 0700 18 700 Факс: (02) 9859 3099",
			Appendix:    "Приложение №1 към Протокол №……………………………..",
			Obligee:     "Задължено лице: Анет4 ЕООД",
			EIK:         "ЕИК: 202112929",
			Site:        "Търговски обект: ? от Анет4 гр. Бургас ул. ? А93",
			Footer:      "ЦУ на НАП 2025г",
		},
	}
}

package main

type Config struct {
	// DataDir holds the six record streams.
	DataDir string `env:"DATA_DIR,default=data"`
	// FieldReplacement substitutes the field separator inside message
	// content on save. Empty means ",".
	FieldReplacement string `env:"FIELD_REPLACEMENT"`
	LogLevel         string `env:"LOG_LEVEL,default=info"`
}

package main

import "github.com/muhammadolammi/jobfit/internal/storage"

type LLMConfig struct {
	Provider     string
	Model        string
	GoogleApiKey string
	OpenAIApiKey string
	OllamaUrl    string
}

type AppConfig struct {
	Port        string
	DBUrl       string
	JWTSecret   string
	LLM         LLMConfig
	R2          storage.R2Config
	RABBITMQUrl string
	LogFilePath string
	Env         string
	TmpDir      string
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

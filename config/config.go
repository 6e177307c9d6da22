package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Assistant AssistantConfig
	Voice     VoiceConfig
	Storage   StorageConfig
}

type AppConfig struct {
	Port             string
	Env              string
	LogLevel         string
	DefaultPhysician string
	SeedOnStart      bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

// RedisConfig is optional. An empty Host disables the assistant quota monitor.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AssistantConfig configures the chat-completion provider. An empty APIKey
// puts the assistant in degraded mode: every chat turn answers with the
// essentials summary without any network call.
type AssistantConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	MaxTokens     int
	Timeout       time.Duration
	Language      string
	QuotaCooldown time.Duration
}

type VoiceConfig struct {
	APIKey          string
	BaseURL         string
	VoiceID         string
	SpeechModel     string
	TranscribeModel string
	Language        string
	Timeout         time.Duration
}

type StorageConfig struct {
	Driver       string // "local" or "gridfs"
	UploadDir    string
	MongoURI     string
	MongoDB      string
	MongoBucket  string
	MaxPhotoSize int64
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func (c *Config) AssistantEnabled() bool {
	return c.Assistant.APIKey != ""
}

func (c *Config) VoiceEnabled() bool {
	return c.Voice.APIKey != ""
}

// LoadConfig reads .env when present and lets the process environment
// override every key.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	assistantTimeout, err := time.ParseDuration(v.GetString("ASSISTANT_TIMEOUT"))
	if err != nil {
		assistantTimeout = 30 * time.Second
	}

	cooldown, err := time.ParseDuration(v.GetString("ASSISTANT_QUOTA_COOLDOWN"))
	if err != nil {
		cooldown = time.Minute
	}

	voiceTimeout, err := time.ParseDuration(v.GetString("VOICE_TIMEOUT"))
	if err != nil {
		voiceTimeout = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:             v.GetString("APP_PORT"),
			Env:              v.GetString("APP_ENV"),
			LogLevel:         v.GetString("LOG_LEVEL"),
			DefaultPhysician: v.GetString("DEFAULT_PHYSICIAN"),
			SeedOnStart:      v.GetBool("SEED_ON_START"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			TimeZone: v.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Assistant: AssistantConfig{
			APIKey:        v.GetString("OPENAI_API_KEY"),
			BaseURL:       v.GetString("OPENAI_BASE_URL"),
			Model:         v.GetString("OPENAI_MODEL"),
			MaxTokens:     v.GetInt("ASSISTANT_MAX_TOKENS"),
			Timeout:       assistantTimeout,
			Language:      v.GetString("ASSISTANT_LANGUAGE"),
			QuotaCooldown: cooldown,
		},
		Voice: VoiceConfig{
			APIKey:          v.GetString("ELEVENLABS_API_KEY"),
			BaseURL:         v.GetString("ELEVENLABS_BASE_URL"),
			VoiceID:         v.GetString("ELEVENLABS_VOICE_ID"),
			SpeechModel:     v.GetString("ELEVENLABS_TTS_MODEL"),
			TranscribeModel: v.GetString("ELEVENLABS_STT_MODEL"),
			Language:        v.GetString("ELEVENLABS_LANGUAGE"),
			Timeout:         voiceTimeout,
		},
		Storage: StorageConfig{
			Driver:       v.GetString("STORAGE_DRIVER"),
			UploadDir:    v.GetString("UPLOAD_DIR"),
			MongoURI:     v.GetString("MONGO_URI"),
			MongoDB:      v.GetString("MONGO_DB"),
			MongoBucket:  v.GetString("MONGO_BUCKET"),
			MaxPhotoSize: v.GetInt64("MAX_PHOTO_SIZE"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3001")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_PHYSICIAN", "Dr. Martin")
	v.SetDefault("SEED_ON_START", false)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "hospital")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")

	v.SetDefault("REDIS_PORT", "6379")

	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("ASSISTANT_MAX_TOKENS", 1024)
	v.SetDefault("ASSISTANT_TIMEOUT", "30s")
	v.SetDefault("ASSISTANT_LANGUAGE", "français")
	v.SetDefault("ASSISTANT_QUOTA_COOLDOWN", "1m")

	v.SetDefault("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io")
	v.SetDefault("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM")
	v.SetDefault("ELEVENLABS_TTS_MODEL", "eleven_multilingual_v2")
	v.SetDefault("ELEVENLABS_STT_MODEL", "scribe_v2")
	v.SetDefault("ELEVENLABS_LANGUAGE", "fr")
	v.SetDefault("VOICE_TIMEOUT", "30s")

	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("UPLOAD_DIR", "uploads/patients")
	v.SetDefault("MONGO_DB", "hospital")
	v.SetDefault("MONGO_BUCKET", "patient_photos")
	v.SetDefault("MAX_PHOTO_SIZE", 10<<20)
}

package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Pg               Pg       `yaml:"pg"`
	JwtTTL           Duration `yaml:"jwt_ttl"`
	LogLevel         string   `yaml:"log_level"`
	LogJSON          bool     `yaml:"log_json"`
	PublicURL        string   `yaml:"public_url"`         // base url embedded in verification links
	FaceServiceURL   string   `yaml:"face_service_url"`   // external face-recognition service
	MatchTolerance   float64  `yaml:"match_tolerance"`    // max encoding distance counted as a match
	ImageMaxSide     int      `yaml:"image_max_side"`     // longer side cap before face detection
	AllowedMimeTypes []string `yaml:"allowed_mime_types"` // upload allow-list
	MaxUploadSize    int64    `yaml:"max_upload_size"`    // bytes
}

// Duration unmarshals yaml values like "30m" or "24h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Email  Email  `yaml:"email"`
}

type Email struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	SenderName string `yaml:"sender_name"`
	Timeout    int    `yaml:"timeout"` // seconds
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return time.Duration(s.Public.JwtTTL)
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (s *Config) applyDefaults() {
	if s.Public.MatchTolerance == 0 {
		s.Public.MatchTolerance = 0.6
	}
	if s.Public.ImageMaxSide == 0 {
		s.Public.ImageMaxSide = 500
	}
	if len(s.Public.AllowedMimeTypes) == 0 {
		s.Public.AllowedMimeTypes = []string{"image/png", "image/jpeg"}
	}
	if s.Public.MaxUploadSize == 0 {
		s.Public.MaxUploadSize = 10 << 20
	}
}

package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server    ServerConfig
	Discovery DiscoveryConfig
	Probe     ProbeConfig
	Broadcast BroadcastConfig
	Store     StoreConfig
	Rollup    RollupConfig
	Retention RetentionConfig
	Kafka     KafkaConfig
	Mail      MailConfig
}

type ServerConfig struct {
	Port        string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFilePath string `envconfig:"LOG_FILE_PATH" default:"log/monitor.log"`
	ExportScope string `envconfig:"EXPORT_SCOPE" default:"metrics:export"`
}

type DiscoveryConfig struct {
	LabelSelector string `envconfig:"FLEET_LABEL_SELECTOR" default:"app.kubernetes.io/part-of=protocol-fleet"`
	Namespace     string `envconfig:"FLEET_NAMESPACE" default:"default"`
	SelfPodName   string `envconfig:"SELF_POD_NAME"`
	Kubeconfig    string `envconfig:"KUBECONFIG"`
}

type ProbeConfig struct {
	Timeout time.Duration `envconfig:"PROBE_TIMEOUT" default:"5s"`
}

type BroadcastConfig struct {
	Interval time.Duration `envconfig:"BROADCAST_INTERVAL" default:"5s"`
}

type StoreConfig struct {
	Path string `envconfig:"STORE_PATH" default:"data/fleetwatch.db"`
}

type RollupConfig struct {
	Interval     time.Duration `envconfig:"ROLLUP_INTERVAL" default:"1h"`
	StartupDelay time.Duration `envconfig:"ROLLUP_STARTUP_DELAY" default:"5m"`
}

type RetentionConfig struct {
	Horizon      time.Duration `envconfig:"RETENTION_HORIZON" default:"168h"`
	Interval     time.Duration `envconfig:"RETENTION_INTERVAL" default:"1h"`
	StartupDelay time.Duration `envconfig:"RETENTION_STARTUP_DELAY" default:"10m"`
}

// KafkaConfig is optional. Sample egress is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"fleet-health-samples"`
}

// MailConfig is optional. The daily report is disabled when Email or
// Recipients is empty.
type MailConfig struct {
	Email      string   `envconfig:"MAIL_EMAIL"`
	Password   string   `envconfig:"MAIL_PASSWORD"`
	Host       string   `envconfig:"MAIL_HOST"`
	Port       int      `envconfig:"MAIL_PORT" default:"587"`
	Recipients []string `envconfig:"MAIL_REPORT_RECIPIENTS"`
	ReportCron string   `envconfig:"MAIL_REPORT_CRON" default:"0 0 * * *"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

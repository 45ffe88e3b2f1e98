package installer

// EnvFile mirrors the variables read by internal/config. Booleans are kept
// as strings so that "false" is still written out.
type EnvFile struct {
	EnableCLI       string `env:"CALC_ENABLE_CLI"`
	EnableTelegram  string `env:"CALC_ENABLE_TELEGRAM"`
	TelegramToken   string `env:"CALC_TELEGRAM_TOKEN"`
	TelegramOwnerID string `env:"CALC_TELEGRAM_OWNER_ID"`
	Debug           string `env:"CALC_DEBUG"`
}

type InstallState struct {
	Channel string
	Env     EnvFile
}

func NewInstallState() *InstallState {
	return &InstallState{}
}

func (s *InstallState) UsesTelegram() bool {
	return s.Channel == ChannelTelegram || s.Channel == ChannelBoth
}

package mpesa

import "os"

// Placeholder values shipped in .env.example. Requests carrying them would
// leak nothing useful and only burn a gateway round trip, so they are
// rejected before any call is made.
const (
	placeholderConsumerKey    = "your_consumer_key_here"
	placeholderConsumerSecret = "your_consumer_secret_here"
	placeholderShortcode      = "your_shortcode_here"
)

// Config holds the Daraja API settings. All of it comes from the
// environment; godotenv loads the .env file in main.
type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	Shortcode      string
	Passkey        string
	AuthURL        string
	STKPushURL     string
	CallbackURL    string
}

func LoadConfig() Config {
	return Config{
		ConsumerKey:    os.Getenv("MPESA_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("MPESA_CONSUMER_SECRET"),
		Shortcode:      os.Getenv("MPESA_SHORTCODE"),
		Passkey:        os.Getenv("MPESA_PASSKEY"),
		AuthURL:        os.Getenv("MPESA_AUTH_URL"),
		STKPushURL:     os.Getenv("MPESA_STK_PUSH_URL"),
		CallbackURL:    os.Getenv("MPESA_CALLBACK_URL"),
	}
}

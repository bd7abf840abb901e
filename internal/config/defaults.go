package config

const (
	defaultDataDir          = "~/.local/share/pilgrim"
	defaultLogDir           = "~/.local/share/pilgrim/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultActivationSource = "manual"

	defaultStrictNameWeight  = 90
	defaultCommonNameWeight  = 50
	defaultHonorificWeight   = 20
	defaultBookingURLPenalty = 40
	defaultPhonePenalty      = 30
	defaultAddressPenalty    = 30

	defaultHighThreshold   = 80
	defaultMediumThreshold = 60
	defaultLowThreshold    = 30

	defaultEpisodeLookupLimit = 5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Scoring: Scoring{
			StrictNameWeight:  defaultStrictNameWeight,
			CommonNameWeight:  defaultCommonNameWeight,
			HonorificWeight:   defaultHonorificWeight,
			BookingURLPenalty: defaultBookingURLPenalty,
			PhonePenalty:      defaultPhonePenalty,
			AddressPenalty:    defaultAddressPenalty,
			HighThreshold:     defaultHighThreshold,
			MediumThreshold:   defaultMediumThreshold,
			LowThreshold:      defaultLowThreshold,
		},
		Matching: Matching{
			EpisodeLookupLimit: defaultEpisodeLookupLimit,
		},
		Affiliate: Affiliate{
			ActivationSource: defaultActivationSource,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

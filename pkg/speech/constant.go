package speech

const (
	// DefaultLanguageCode is the fixed recognition/synthesis locale.
	DefaultLanguageCode = "en-US"

	// DefaultSampleRateHertz is the expected sample rate of uploaded audio.
	DefaultSampleRateHertz = 16000

	// DefaultAudioEncoding is the wire encoding of uploaded audio.
	DefaultAudioEncoding = "LINEAR16"

	// DefaultSynthesisEncoding is the output encoding for synthesized speech.
	DefaultSynthesisEncoding = "MP3"
)

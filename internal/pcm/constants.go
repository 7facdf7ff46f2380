package pcm

// WAV format constants
const (
	HeaderSize = 44 // Total WAV header size in bytes

	riffHeaderSize  = 36 // RIFF size field = riffHeaderSize + dataSize
	pcmSubchunkSize = 16 // fmt subchunk size for PCM format
	pcmFormatTag    = 1  // AudioFormat (1 = PCM)
	monoChannels    = 1
	bitsPerSample   = 16
	bytesPerSample  = 2

	maxDataSize = 1<<32 - 1 - riffHeaderSize
	maxInt16    = 32767.0
	minRate     = 1
	maxRate     = 1<<31 - 1 // byte rate must fit in u32
)

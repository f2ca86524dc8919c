package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	NanoidSize     = 12
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoID returns a short random token suffix, used for the locally minted
// auth-token placeholders and upload keys.
func NanoID() string {
	return NanoIDSize(NanoidSize)
}

func NanoIDSize(size int) string {
	if size == 0 {
		size = NanoidSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}

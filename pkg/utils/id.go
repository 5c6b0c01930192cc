package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const captureIDLength = 12

// GenerateID gera o identificador de uma captura de snapshot
func GenerateID() string {
	return gonanoid.MustGenerate(characters, captureIDLength)
}

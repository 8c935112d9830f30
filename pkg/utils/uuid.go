package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID gera um identificador curto para uma execução do pipeline.
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 8)
}

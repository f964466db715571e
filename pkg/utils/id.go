package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRevision gera o token curto que identifica uma versão dos registros
func GenerateRevision() (string, error) {
	return gonanoid.Generate(characters, 10)
}

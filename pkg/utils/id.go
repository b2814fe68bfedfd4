package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// PublicIDLength garante ~125 bits de entropia com o alfabeto de 62 símbolos
const PublicIDLength = 21

// GeneratePublicID gera um identificador público, não derivável do ID interno
func GeneratePublicID() (string, error) {
	return gonanoid.Generate(characters, PublicIDLength)
}

package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// JSON é o codec compartilhado pelo store e pela API
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

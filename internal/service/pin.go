// File: internal/service/pin.go
package service

import (
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/argon2"
)

// argon2id 參數
const (
	pinTime    = 2
	pinMemory  = 19 * 1024
	pinThreads = 1
	pinKeyLen  = 32
)

var ErrEmptyPepper = errors.New("PIN pepper not set")

var argon2IDKey = argon2.IDKey

// HashPin 以 argon2id 與伺服器端 pepper 產生 PIN 摘要
// 同一 pepper 下相同 PIN 必得相同摘要，資料庫可對摘要建立 unique index 並直接比對
func HashPin(pin, pepper string) (string, error) {
	if pepper == "" {
		return "", ErrEmptyPepper
	}
	key := argon2IDKey([]byte(pin), []byte(pepper), pinTime, pinMemory, pinThreads, pinKeyLen)
	return hex.EncodeToString(key), nil
}

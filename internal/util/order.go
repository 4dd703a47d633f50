package util

import (
	"fmt"

	"github.com/lithammer/shortuuid/v4"
)

const (
	alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// GenerateOrderCode generates a unique order code in the format "ORD-XXXXXXXXXX".
func GenerateOrderCode() string {
	uuid := shortuuid.NewWithAlphabet(alphabet)

	return fmt.Sprintf("ORD-%s", uuid[:10])
}

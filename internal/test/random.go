package test

import (
	"math/rand/v2"
	"strings"
)

const nameLetters = "abcdefghijklmnopqrstuvwxyz"

var pastries = []string{"Croissant", "Baguette", "Brioche", "Danish", "Eclair", "Focaccia", "Scone"}

// RandomWord returns a lowercase word with length in [minLen, maxLen].
func RandomWord(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen + rand.IntN(maxLen-minLen+1)
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(nameLetters[rand.IntN(len(nameLetters))])
	}
	return b.String()
}

// RandomItemName returns a plausible menu item name such as "Brioche qwzk".
func RandomItemName() string {
	return pastries[rand.IntN(len(pastries))] + " " + RandomWord(3, 8)
}

// RandomCustomerName returns a capitalised first and last name.
func RandomCustomerName() string {
	first, last := RandomWord(3, 9), RandomWord(4, 12)
	return strings.ToUpper(first[:1]) + first[1:] + " " + strings.ToUpper(last[:1]) + last[1:]
}

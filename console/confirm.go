package console

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func Confirm(prompt string) bool {
	return ConfirmFrom(os.Stdin, prompt)
}

func ConfirmFrom(r io.Reader, prompt string) bool {
	fmt.Printf("%s [y/n]: ", prompt)
	var response string
	_, err := fmt.Fscanln(r, &response)
	if err != nil {
		fmt.Println("Error reading response:", err)
		return false
	}

	validResponses := []string{"yes", "yep", "y"}
	for _, vr := range validResponses {
		if strings.EqualFold(response, vr) {
			return true
		}
	}

	return false
}

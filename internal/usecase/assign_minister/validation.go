package assign_minister

import (
	"fmt"
	"strings"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.MinisterID) == "" {
		return fmt.Errorf("%w: minister id is required", ErrInvalidInput)
	}
	return nil
}

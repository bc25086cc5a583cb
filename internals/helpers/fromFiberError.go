package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah error yang lolos dari handler (biasanya *fiber.Error,
// mis. 404 route tidak ada) menjadi response JSON konsisten via JsonError.
// Jika bukan *fiber.Error, fallback ke 500 tanpa membocorkan pesan asli.
// Dipakai sebagai fiber.Config.ErrorHandler.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "")
}

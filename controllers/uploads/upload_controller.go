package uploadController

import (
	"strconv"
	"time"

	"mystorx-api/configs"
	"mystorx-api/responses"
	"mystorx-api/services/cloudinary"

	"github.com/gofiber/fiber/v2"
)

const avatarFolder = "avatars"

// GetSignature issues a short-lived signature so the client can upload the
// avatar straight to the image host without the file passing through us.
func GetSignature(c *fiber.Ctx) error {
	secret := configs.EnvCloudinaryAPISecret()
	if secret == "" || configs.EnvCloudinaryCloudName() == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(responses.APIResponse{
			Status:  fiber.StatusServiceUnavailable,
			Message: "Uploads are not configured",
		})
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := cloudinary.SignParams(map[string]string{
		"timestamp": timestamp,
		"folder":    avatarFolder,
	}, secret)

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Signature generated",
		Result: &fiber.Map{
			"signature": signature,
			"timestamp": timestamp,
			"cloudName": configs.EnvCloudinaryCloudName(),
			"apiKey":    configs.EnvCloudinaryAPIKey(),
			"folder":    avatarFolder,
		},
	})
}

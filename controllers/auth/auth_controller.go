package authController

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"mystorx-api/configs"
	"mystorx-api/middlewares"
	"mystorx-api/models"
	"mystorx-api/responses"
	"mystorx-api/services/cloudinary"
	"mystorx-api/services/mailer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")
var otpCollection *mongo.Collection = configs.GetCollection(configs.DB, "otps")

var validate = validator.New()

// GenerateOTP returns a 6-digit one-time code.
func GenerateOTP() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}

func createJwt(userId string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userId,
		"exp": time.Now().Add(24 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.EnvJWTSecret()))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloudinaryCreds() cloudinary.Credentials {
	return cloudinary.Credentials{
		CloudName: configs.EnvCloudinaryCloudName(),
		APIKey:    configs.EnvCloudinaryAPIKey(),
		APISecret: configs.EnvCloudinaryAPISecret(),
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
}

// startRegistration stores a pending registration behind an OTP for the
// given purpose and mails the code. Passwords are hashed before the payload
// is persisted.
func startRegistration(c *fiber.Ctx, purpose string) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody registerRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if err := validate.Struct(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Name, email and password are required",
		})
	}

	email := normalizeEmail(reqBody.Email)

	err := userCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "User already exists",
		})
	}
	if err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking user existence",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error hashing password",
		})
	}

	otp := GenerateOTP()
	now := time.Now()

	// Replace any live code for this email+purpose instead of stacking new ones.
	_, err = otpCollection.UpdateOne(ctx,
		bson.M{"email": email, "purpose": purpose},
		bson.M{
			"$set": bson.M{
				"otp":       otp,
				"expiresAt": now.Add(models.OtpExpiry),
				"payload": models.OtpPayload{
					Name:     reqBody.Name,
					Password: string(hashedPassword),
					Phone:    reqBody.Phone,
				},
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Registration failed",
		})
	}

	mailer.SendVerifyOtpEmail(email, reqBody.Name, otp)

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "OTP sent (valid for 5 minutes)",
	})
}

// Register starts OTP-gated account creation for a regular user.
func Register(c *fiber.Ctx) error {
	return startRegistration(c, models.OtpPurposeRegister)
}

// RegisterDelivery starts OTP-gated onboarding of a delivery partner.
func RegisterDelivery(c *fiber.Ctx) error {
	return startRegistration(c, models.OtpPurposeDeliveryRegister)
}

// VerifyOtp resolves a pending code. Registration purposes create the
// account; the reset purpose only acknowledges so the client can proceed.
func VerifyOtp(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email string `json:"email"`
		Otp   string `json:"otp"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Email == "" || reqBody.Otp == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email and OTP are required",
		})
	}

	email := normalizeEmail(reqBody.Email)

	var record models.Otp
	if err := otpCollection.FindOne(ctx, bson.M{"email": email}).Decode(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "OTP not found. Please request a new one.",
		})
	}

	if record.Expired(time.Now()) {
		_, _ = otpCollection.DeleteOne(ctx, bson.M{"_id": record.Id})
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "OTP expired. Please request a new one.",
		})
	}

	if record.Otp != reqBody.Otp {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid OTP",
		})
	}

	switch record.Purpose {
	case models.OtpPurposeRegister, models.OtpPurposeDeliveryRegister:
		if record.Payload == nil {
			_, _ = otpCollection.DeleteOne(ctx, bson.M{"_id": record.Id})
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Registration expired. Please register again.",
			})
		}

		role := models.RoleUser
		if record.Purpose == models.OtpPurposeDeliveryRegister {
			role = models.RoleDelivery
		}

		now := time.Now()
		newUser := models.User{
			Id:              primitive.NewObjectID(),
			Name:            record.Payload.Name,
			Email:           email,
			Password:        record.Payload.Password,
			Phone:           record.Payload.Phone,
			Role:            role,
			Status:          models.StatusActive,
			IsEmailVerified: true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if _, err := userCollection.InsertOne(ctx, newUser); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error creating user",
			})
		}

		if role == models.RoleDelivery {
			mailer.SendDeliveryWelcomeEmail(email, newUser.Name)
		} else {
			mailer.SendWelcomeEmail(email, newUser.Name)
		}

		_, _ = otpCollection.DeleteOne(ctx, bson.M{"_id": record.Id})

		token, err := createJwt(newUser.Id.Hex())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error while generating jwt token",
			})
		}

		newUser.Password = ""
		return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
			Status:  fiber.StatusOK,
			Message: "Account verified successfully",
			Result:  &fiber.Map{"token": token, "user": newUser},
		})

	case models.OtpPurposeResetPassword:
		return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
			Status:  fiber.StatusOK,
			Message: "OTP verified for password reset",
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
		Status:  fiber.StatusBadRequest,
		Message: "Invalid OTP purpose",
	})
}

// ResendOtp refreshes a live code and mails it again.
func ResendOtp(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email   string `json:"email"`
		Purpose string `json:"purpose"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Email == "" || reqBody.Purpose == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email and purpose are required",
		})
	}

	email := normalizeEmail(reqBody.Email)
	otp := GenerateOTP()
	now := time.Now()

	result, err := otpCollection.UpdateOne(ctx,
		bson.M{"email": email, "purpose": reqBody.Purpose},
		bson.M{"$set": bson.M{
			"otp":       otp,
			"expiresAt": now.Add(models.OtpExpiry),
			"updatedAt": now,
		}},
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error refreshing OTP",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "OTP expired or invalid purpose. Please start again.",
		})
	}

	switch reqBody.Purpose {
	case models.OtpPurposeResetPassword:
		mailer.SendResetPasswordOtpEmail(email, "", otp)
	default:
		mailer.ResendVerifyOtpEmail(email, otp)
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "OTP resent (valid for 5 minutes)",
	})
}

// Login exchanges credentials for a token.
func Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": normalizeEmail(reqBody.Email)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching from database",
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqBody.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	if user.Status != models.StatusActive {
		return c.Status(fiber.StatusForbidden).JSON(responses.APIResponse{
			Status:  fiber.StatusForbidden,
			Message: "Account is blocked",
		})
	}

	token, err := createJwt(user.Id.Hex())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while generating jwt token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "User signed in successfully",
		Result: &fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    user.Id.Hex(),
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		},
	})
}

// ForgotPassword issues a reset OTP. Email failures never block the flow.
func ForgotPassword(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email is required",
		})
	}

	email := normalizeEmail(reqBody.Email)

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	otp := GenerateOTP()
	now := time.Now()

	_, err := otpCollection.UpdateOne(ctx,
		bson.M{"email": email, "purpose": models.OtpPurposeResetPassword},
		bson.M{
			"$set": bson.M{
				"otp":       otp,
				"expiresAt": now.Add(models.OtpExpiry),
				"updatedAt": now,
			},
			"$unset":       bson.M{"payload": ""},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Forgot password failed",
		})
	}

	mailer.SendResetPasswordOtpEmail(email, user.Name, otp)

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "OTP generated for password reset",
	})
}

// ResetPassword finalizes a reset once the OTP checks out.
func ResetPassword(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email       string `json:"email"`
		Otp         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&reqBody); err != nil ||
		reqBody.Email == "" || reqBody.Otp == "" || reqBody.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "All fields are required",
		})
	}

	email := normalizeEmail(reqBody.Email)

	var record models.Otp
	err := otpCollection.FindOne(ctx, bson.M{
		"email":   email,
		"purpose": models.OtpPurposeResetPassword,
	}).Decode(&record)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "OTP not found",
		})
	}

	if record.Expired(time.Now()) {
		_, _ = otpCollection.DeleteOne(ctx, bson.M{"_id": record.Id})
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "OTP expired",
		})
	}

	if record.Otp != reqBody.Otp {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid OTP",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error hashing password",
		})
	}

	result, err := userCollection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"password": string(hashedPassword), "updatedAt": time.Now()}},
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Reset password failed",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	if _, err := otpCollection.DeleteMany(ctx, bson.M{
		"email":   email,
		"purpose": models.OtpPurposeResetPassword,
	}); err != nil {
		log.Printf("reset password: otp cleanup failed: %v", err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Password reset successful",
	})
}

// GetProfile returns the authenticated account.
func GetProfile(c *fiber.Ctx) error {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Profile fetched successfully",
		Result: &fiber.Map{
			"id":     user.Id.Hex(),
			"name":   user.Name,
			"email":  user.Email,
			"phone":  user.Phone,
			"avatar": user.AvatarURL(),
			"role":   user.Role,
		},
	})
}

// GetMiniProfile returns just the header widget fields.
func GetMiniProfile(c *fiber.Ctx) error {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Profile fetched successfully",
		Result:  &fiber.Map{"name": user.Name, "avatar": user.AvatarURL()},
	})
}

type updateProfileRequest struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Password        string  `json:"password"`
	CurrentPassword string  `json:"currentPassword"`
	AvatarURL       *string `json:"avatarUrl"`
	AvatarPublicID  *string `json:"avatarPublicId"`
}

// UpdateProfile changes name/phone/password and swaps or clears the avatar.
func UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	current, ok := middlewares.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found in request",
		})
	}

	var reqBody updateProfileRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	// Re-read with the password hash; AuthMiddleware strips it.
	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": current.Id}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	update := bson.M{"updatedAt": time.Now()}
	unset := bson.M{}

	if reqBody.Name != "" {
		update["name"] = reqBody.Name
	}
	if reqBody.Phone != "" {
		update["phone"] = reqBody.Phone
	}

	if reqBody.Password != "" {
		if reqBody.CurrentPassword == "" {
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Current password is required",
			})
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqBody.CurrentPassword)) != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Current password is incorrect",
			})
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error hashing password",
			})
		}
		update["password"] = string(hashedPassword)
	}

	// Explicit nulls clear the avatar; both fields set swap it.
	if reqBody.AvatarURL != nil && reqBody.AvatarPublicID != nil {
		if *reqBody.AvatarURL == "" && *reqBody.AvatarPublicID == "" {
			if user.Avatar != nil && user.Avatar.PublicID != "" {
				if err := cloudinary.Destroy(ctx, cloudinaryCreds(), user.Avatar.PublicID); err != nil {
					log.Printf("profile update: avatar destroy failed: %v", err)
				}
			}
			unset["avatar"] = ""
		} else if *reqBody.AvatarURL != "" && *reqBody.AvatarPublicID != "" {
			if user.Avatar != nil && user.Avatar.PublicID != "" {
				if err := cloudinary.Destroy(ctx, cloudinaryCreds(), user.Avatar.PublicID); err != nil {
					log.Printf("profile update: avatar destroy failed: %v", err)
				}
			}
			update["avatar"] = models.Avatar{URL: *reqBody.AvatarURL, PublicID: *reqBody.AvatarPublicID}
		}
	}

	mutation := bson.M{"$set": update}
	if len(unset) > 0 {
		mutation["$unset"] = unset
	}

	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": user.Id}, mutation); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Profile update failed",
		})
	}

	var updated models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": user.Id}).Decode(&updated); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Profile update failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated successfully",
		Result: &fiber.Map{
			"id":     updated.Id.Hex(),
			"name":   updated.Name,
			"email":  updated.Email,
			"phone":  updated.Phone,
			"avatar": updated.AvatarURL(),
			"role":   updated.Role,
		},
	})
}

// AdminUpdateUser lets back office staff change another account's
// name/phone/role.
func AdminUpdateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	targetID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	var reqBody struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Role  string `json:"role"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	update := bson.M{"updatedAt": time.Now()}
	if reqBody.Name != "" {
		update["name"] = reqBody.Name
	}
	if reqBody.Phone != "" {
		update["phone"] = reqBody.Phone
	}
	if reqBody.Role != "" {
		switch reqBody.Role {
		case models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin, models.RoleDelivery:
			update["role"] = reqBody.Role
		default:
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid role",
			})
		}
	}

	var updated models.User
	err = userCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": targetID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update user",
		})
	}

	updated.Password = ""
	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "User updated successfully",
		Result:  &fiber.Map{"user": updated},
	})
}

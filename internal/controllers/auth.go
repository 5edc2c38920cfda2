package controllers

import (
	"net/http"
	"os"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes that do not require
// authentication with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsRegister)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)
}

// RegisterProfileRoutes registers the routes for the profile of the
// authenticated user with the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.PUT("", UpdateProfile)

	r.OPTIONS("/password", OptionsPassword)
	r.PUT("/password", UpdatePassword)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/api/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/api/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/api/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/api/profile/password [options]
func OptionsPassword(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Register user
// @Description	Creates a new user account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/api/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	if request.Username == "" || request.Email == "" || request.Password == "" {
		e := errRegisterFieldsRequired.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &e})
		return
	}

	user := models.User{
		Username: request.Username,
		Email:    request.Email,
	}

	err = user.SetPassword(request.Password)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, UserResponse{Error: &e})
		return
	}

	// A duplicate email surfaces as models.ErrEmailAlreadyInUse here
	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: &user})
}

// @Summary		Login
// @Description	Verifies the credentials and issues a bearer token with a lifetime of one hour
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		500			{object}	TokenResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/api/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{Error: &e})
		return
	}

	if request.Email == "" || request.Password == "" {
		e := errLoginFieldsRequired.Error()
		c.JSON(http.StatusBadRequest, TokenResponse{Error: &e})
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", request.Email).Error
	if err != nil {
		// An unknown email is reported with 400, not 404, so that the
		// response does not leak which emails are registered
		s := status(err)
		if s == http.StatusNotFound {
			s = http.StatusBadRequest
		}

		e := err.Error()
		c.JSON(s, TokenResponse{Error: &e})
		return
	}

	err = user.VerifyPassword(request.Password)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TokenResponse{Error: &e})
		return
	}

	token, err := auth.CreateToken(user.ID, []byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Data: &Token{Token: token}})
}

// @Summary		Update profile
// @Description	Updates the profile of the authenticated user. Only values to be updated need to be specified.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		404		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		ProfileEditable	true	"Profile"
// @Router			/api/profile [put]
func UpdateProfile(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", userID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	var update ProfileEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(models.User{
		Username: update.Username,
		Email:    update.Email,
	}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	// Return the resource as it is persisted
	err = models.DB.First(&user, "id = ?", user.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Update password
// @Description	Changes the password of the authenticated user after verifying the current one
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200
// @Failure		400			{object}	UserResponse
// @Failure		404			{object}	UserResponse
// @Failure		500			{object}	UserResponse
// @Param			passwords	body		PasswordUpdateRequest	true	"Passwords"
// @Router			/api/profile/password [put]
func UpdatePassword(c *gin.Context) {
	var request PasswordUpdateRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	if request.CurrentPassword == "" || request.NewPassword == "" {
		e := errPasswordFieldsRequired.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &e})
		return
	}

	var user models.User
	err = models.DB.First(&user, "id = ?", userID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	err = user.VerifyPassword(request.CurrentPassword)
	if err != nil {
		e := errCurrentPasswordWrong.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &e})
		return
	}

	err = user.SetPassword(request.NewPassword)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, UserResponse{Error: &e})
		return
	}

	err = models.DB.Model(&user).Update("password", user.Password).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

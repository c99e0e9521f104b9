package handler

import (
	"net/http"
	"time"

	"coopmini/config"
	"coopmini/dao/cache"
	"coopmini/middleware"
	appctx "coopmini/pkg/context"
	"coopmini/pkg/jwt"
	"coopmini/pkg/response"
	"coopmini/service"
	"coopmini/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
	Tokens      *cache.TokenStorage
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret), u.Tokens)

	g := r.Group("/user")
	g.POST("/signup", appctx.Wrap(u.Signup))
	g.POST("/login", appctx.Wrap(u.Login))
	g.POST("/logout", authorize, appctx.Wrap(u.Logout))
	g.GET("/me", authorize, appctx.Wrap(u.Me))
	g.PUT("/me", authorize, appctx.Wrap(u.UpdateProfile))
}

func (u *User) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	user, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Created(c, types.SignupResponse{UserID: user.ID})
	return nil
}

func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	user, err := u.UserService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	expire := time.Duration(u.Config.Jwt.ExpireHours) * time.Hour
	token, err := jwt.GenerateToken([]byte(u.Config.Jwt.Secret), user.ID, user.IsAdmin, expire)
	if err != nil {
		return err
	}

	response.Success(c, types.LoginResponse{
		Token: token,
		User: types.UserInfo{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		},
	})
	return nil
}

// Logout 把当前令牌的 jti 挂进吊销名单，到令牌自然过期为止
func (u *User) Logout(c *gin.Context) error {
	jti := appctx.GetTokenID(c)
	exp := appctx.GetTokenExp(c)

	if jti != "" && !exp.IsZero() {
		if err := u.Tokens.Revoke(c.Request.Context(), jti, time.Until(exp)); err != nil {
			return err
		}
	}

	response.Success(c, gin.H{"message": "Logout successful"})
	return nil
}

func (u *User) Me(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	user, err := u.UserService.FindById(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, types.UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
	return nil
}

func (u *User) UpdateProfile(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	user, err := u.UserService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, types.UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
	return nil
}

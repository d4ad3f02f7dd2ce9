package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const (
	MsgSignupIncomplete = "모든 정보를 입력해주세요."
	MsgPasswordMismatch = "비밀번호가 일치하지 않습니다."
)

var (
	ErrSignupIncomplete = errors.New(MsgSignupIncomplete)
	ErrPasswordMismatch = errors.New(MsgPasswordMismatch)
)

type SignupForm struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// Validate runs the local checks. Password strength is the server's job.
func (f SignupForm) Validate() error {
	if f.Username == "" || f.Password == "" || f.ConfirmPassword == "" {
		return ErrSignupIncomplete
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// Signup creates the account and logs in with it.
func (c *Client) Signup(ctx context.Context, f SignupForm) error {
	if err := f.Validate(); err != nil {
		return err
	}
	body := map[string]string{"username": f.Username, "password": f.Password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/user", body, nil); err != nil {
		return err
	}
	return c.Login(ctx, f.Username, f.Password)
}

// Login exchanges credentials for a token and stores it in the session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	resp, err := c.send(ctx, http.MethodPost, "/auth/token",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var tok tokenResponse
	if err := c.decode("/auth/token", resp.Body, &tok); err != nil {
		return err
	}
	c.session.SetToken(tok.AccessToken)
	return nil
}

func (c *Client) Logout() { c.session.Clear() }

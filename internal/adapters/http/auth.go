package httpadapter

import (
	"context"

	"tikkeul/internal/api"
	"tikkeul/internal/domain"
)

func (s *Server) CreateUser(ctx context.Context, req api.CreateUserRequestObject) (api.CreateUserResponseObject, error) {
	if req.Body == nil {
		return nil, domain.Invalid("missing body")
	}
	if err := s.svc.Auth.CreateUser(ctx, req.Body.Username, req.Body.Password); err != nil {
		return nil, err
	}
	return api.CreateUser201JSONResponse{Username: req.Body.Username}, nil
}

// CreateToken takes form-encoded credentials.
func (s *Server) CreateToken(ctx context.Context, req api.CreateTokenRequestObject) (api.CreateTokenResponseObject, error) {
	if req.Body == nil || req.Body.Username == "" || req.Body.Password == "" {
		return nil, domain.Invalid("username and password are required")
	}
	token, err := s.svc.Auth.Login(ctx, req.Body.Username, req.Body.Password)
	if err != nil {
		return nil, err
	}
	return api.CreateToken200JSONResponse{AccessToken: token, TokenType: "Bearer"}, nil
}

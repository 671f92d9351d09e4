package jwttoken

import (
	authmw "recruitdesk/pkg/platform/middleware/auth"
)

// JWTServiceAdapter bridges JWTService to the auth middleware's validator interface.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*authmw.JWTClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &authmw.JWTClaims{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}

package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crowdbridge/internal/repository"
	tokenIssuer "crowdbridge/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
)

// OpenSession binds role to the account granted by the signing agent and
// issues a session token for it. The stored preference is only written when
// it changes.
func (b *Bridge) OpenSession(ctx context.Context, role string) (Session, error) {
	r, err := ParseRole(role)
	if err != nil {
		return Session{}, err
	}

	address, ok := b.agent.Address()
	if !ok {
		address, err = b.ConnectAgent(ctx)
		if err != nil {
			return Session{}, fmt.Errorf("connect agent: %w", err)
		}
	}

	current, err := b.repo.GetRole(ctx, address.Hex())
	switch {
	case errors.Is(err, repository.ErrPreferenceNotFound) || (err == nil && current != string(r)):
		if err := b.repo.SaveRole(ctx, address.Hex(), string(r)); err != nil {
			return Session{}, fmt.Errorf("save role: %w", err)
		}
		b.logs.Infow("role changed", "address", address.Hex(), "role", r)
	case err != nil:
		return Session{}, fmt.Errorf("get role: %w", err)
	}

	token := b.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Address:    address.Hex(),
		Role:       string(r),
		Expiration: time.Duration(b.settings.SessionHours),
	})
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	return Session{
		Address: address.Hex(),
		Role:    r,
		Token:   signed,
	}, nil
}

// Role returns the role address last chose.
func (b *Bridge) Role(ctx context.Context, address common.Address) (Role, error) {
	stored, err := b.repo.GetRole(ctx, address.Hex())
	if err != nil {
		return "", fmt.Errorf("get role: %w", err)
	}
	return ParseRole(stored)
}

package service

import (
	"bopLand/internal/auth"
	"bopLand/internal/domain"
	"bopLand/internal/storage"
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

var standardValves = []string{
	"LICHOKE", "LOCHOKE", "MICHOKE", "MOCHOKE", "UICHOKE", "UOCHOKE",
	"LIKILL", "LOKILL", "MIKILL", "MOKILL", "UIKILL", "UOKILL",
	"IGUANNULAR", "IGLANNULAR", "OGUANNULAR", "OGLANNULAR",
}

var standardPreventers = []string{
	"TPIPERAM", "LPIPERAM", "MPIPERAM", "UPIPERAM",
	"LBSR", "UBSR", "LANNULAR", "UANNULAR",
}

func ptr(f float64) *float64 {
	return &f
}

func without(all []string, skip ...string) []string {
	out := make([]string, 0, len(all))
	for _, a := range all {
		drop := false
		for _, s := range skip {
			if a == s {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, a)
		}
	}
	return out
}

// initialBOPs - стартовый набор сонд
func initialBOPs() []domain.CreateBOPInput {
	return []domain.CreateBOPInput{
		{
			Sonda:      "NSXX",
			Latitude:   ptr(-22.46391639),
			Longitude:  ptr(-40.05731667),
			Valves:     standardValves,
			Preventers: standardPreventers,
		},
		{
			Sonda:      "NSYY",
			Latitude:   ptr(-24.78901472),
			Longitude:  ptr(-42.50973611),
			Valves:     without(standardValves, "MIKILL", "MOKILL"),
			Preventers: without(standardPreventers, "TPIPERAM"),
		},
	}
}

// Seed заполняет пустую базу администратором и стартовыми сондами.
// Если BOP уже есть, ничего не делает.
func (s *Service) Seed(outerCtx context.Context, admin domain.RegisterInput) error {
	hash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return s.formatError(outerCtx, opSeed, err)
	}

	seeded := false
	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		count, err := tx.BOPRepo().Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		email := strings.ToLower(strings.TrimSpace(admin.Email))
		_, err = tx.UserRepo().GetByEmail(ctx, email)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			user := &domain.User{Name: admin.Name, Email: email, PasswordHash: hash}
			if err := tx.UserRepo().Create(ctx, user); err != nil {
				return err
			}
		case err != nil:
			return err
		}

		for _, input := range initialBOPs() {
			bop := &domain.BOP{Sonda: input.Sonda, Latitude: input.Latitude, Longitude: input.Longitude}
			for _, v := range input.Valves {
				bop.AddValve(v)
			}
			for _, p := range input.Preventers {
				bop.AddPreventer(p)
			}
			if err := tx.BOPRepo().Create(ctx, bop); err != nil {
				return err
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return s.formatError(outerCtx, opSeed, err)
	}

	if seeded {
		log.Info().Str("layer", "service").Msg("initial data loaded")
	} else {
		log.Info().Str("layer", "service").Msg("database already has data, skipping seed")
	}

	return nil
}

package impl

import (
	"context"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/repository"

	"github.com/pkg/errors"
)

// errorMessage prefers the user-facing message of app errors.
func errorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}

// requireSession fails with AUTHENTICATION_REQUIRED when nobody is signed in.
func requireSession(session *entity.Session) error {
	if session.UID() == "" {
		return domainerrors.ErrAuthenticationRequired
	}

	return nil
}

// mapRepoError converts repository sentinels into app errors.
func mapRepoError(err error, details string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrShopNotFound):
		return domainerrors.ErrShopNotFound
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrOfferNotFound):
		return domainerrors.ErrOfferNotFound
	case errors.Is(err, repository.ErrPermissionDenied):
		return domainerrors.ErrPermissionDenied
	default:
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// loadOwnedShop fetches a shop and checks that the session user owns it.
// Backend access rules are bypassed by the admin SDK, so ownership is enforced here.
func loadOwnedShop(ctx context.Context, shopRepo repository.ShopRepository, session *entity.Session, shopID, deniedMessage string) (*entity.Shop, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	shop, err := shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find shop")
	}

	if shop.OwnerID != session.UserID {
		return nil, domainerrors.ErrPermissionDenied.WithMessage(deniedMessage)
	}

	return shop, nil
}

// denyFriendly replaces a backend permission denial with the friendly message.
func denyFriendly(err error, deniedMessage string) error {
	if errors.Is(err, domainerrors.ErrPermissionDenied) {
		return domainerrors.ErrPermissionDenied.WithMessage(deniedMessage)
	}

	return err
}

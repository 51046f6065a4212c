package firestore

import (
	"supermall/internal/domain/repository"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError converts Firestore status codes into repository sentinels.
func mapError(err error, notFound error, msg string) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		if notFound != nil {
			return notFound
		}
	case codes.PermissionDenied:
		return repository.ErrPermissionDenied
	}

	return errors.Wrap(err, msg)
}

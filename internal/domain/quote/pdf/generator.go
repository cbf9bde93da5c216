package pdf

import (
	"hurghada-dream/go_backend/internal/domain/quote"
	"hurghada-dream/go_backend/internal/domain/settings"
)

type Generator interface {
	Generate(q quote.Quote, agency settings.Agency) ([]byte, error)
}

package snapshot

import (
	"context"
	"errors"
	"time"
)

// ErrStorage sinaliza falha de I/O na camada de persistência.
// Falhas de storage abortam o ciclo corrente sem corromper o histórico.
var ErrStorage = errors.New("snapshot storage failure")

// Store é o log append-only de snapshots por jogo mais o histórico de takes
// publicadas. Snapshots nunca são sobrescritos nem removidos.
type Store interface {
	// Append persiste um snapshot novo e devolve o id gerado.
	// Tudo-ou-nada: nunca deixa escrita parcial.
	Append(ctx context.Context, s *Snapshot) (string, error)

	// Latest devolve o snapshot mais recente do jogo, ou nil se for a
	// primeira observação.
	Latest(ctx context.Context, gameID string) (*Snapshot, error)

	// RecordPost anexa uma take publicada ao histórico do dia.
	RecordPost(ctx context.Context, p *PostRecord) error

	// PostsSince devolve as takes publicadas a partir do corte,
	// ordenadas por posted_at ascendente.
	PostsSince(ctx context.Context, cutoff time.Time) ([]PostRecord, error)
}

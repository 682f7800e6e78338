package cache

import (
	"context"
	"time"

	"catalog_back_end/internal/database"
)

// TTL long : le snapshot sert de transport de secours quand la feuille
// publiée est injoignable, pas de cache de fraîcheur.
const FeedSnapshotTTL = 7 * 24 * time.Hour

// StoreFeedSnapshot garde le texte brut d'un flux dans Redis.
func StoreFeedSnapshot(ctx context.Context, category, raw string) error {
	return database.Redis.Set(ctx, "feed:"+category, raw, FeedSnapshotTTL).Err()
}

// GetFeedSnapshot relit le dernier texte brut connu pour un flux.
func GetFeedSnapshot(ctx context.Context, category string) (string, error) {
	return database.Redis.Get(ctx, "feed:"+category).Result()
}

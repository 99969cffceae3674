// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rebuild

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/storage"
)

// BatchWriter persists a snapshot batch by batch into a staged generation.
type BatchWriter struct {
	writer         storage.GenerationWriter
	batchSize      int
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchWriter creates a new batch writer.
// maxRetries: maximum number of attempts for each batch write
// retryBaseDelay: base delay for exponential backoff
func NewBatchWriter(writer storage.GenerationWriter, batchSize, maxRetries int, retryBaseDelay time.Duration) *BatchWriter {
	if batchSize <= 0 {
		batchSize = DefaultConfig().BatchSize
	}
	return &BatchWriter{
		writer:         writer,
		batchSize:      batchSize,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// WriteAll writes entries in order, calling progress after each batch.
// Iteration stops at the first batch that still fails after retrying.
func (bw *BatchWriter) WriteAll(ctx context.Context, entries []*core.ResolvedEntry, progress func(n int)) error {
	for start := 0; start < len(entries); start += bw.batchSize {
		end := min(start+bw.batchSize, len(entries))
		batch := entries[start:end]

		err := RetryWithBackoff(ctx, func() error {
			err := bw.writer.Write(ctx, batch)
			if errors.Is(err, storage.ErrWriterFinished) || errors.Is(err, storage.ErrStorageClosed) {
				return Permanent(err)
			}
			return err
		}, bw.maxRetries, bw.retryBaseDelay)
		if err != nil {
			return fmt.Errorf("writing entries %d-%d after %d attempts: %w", start, end-1, bw.maxRetries, err)
		}

		if progress != nil {
			progress(len(batch))
		}
	}
	return nil
}

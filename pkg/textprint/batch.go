// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textprint

import (
	"context"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/matrixorigin/nanotext/pkg/common/moerr"
	"github.com/matrixorigin/nanotext/pkg/logutil"
	"github.com/matrixorigin/nanotext/pkg/nanopb"
)

// PrintAll renders independent messages concurrently on a worker
// pool.  Results come back in input order; a message that fails to
// render gets the "Error printing proto: ..." line as its result and
// the failure is logged.  ctx only gates submission of work; an
// individual render, once started, is not cancellable.
func PrintAll(ctx context.Context, msgs []nanopb.Message, parallelism int) ([]string, error) {
	return defaultPrinter.PrintAll(ctx, msgs, parallelism)
}

func (p *Printer) PrintAll(ctx context.Context, msgs []nanopb.Message, parallelism int) ([]string, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	pool, err := ants.NewPool(parallelism, ants.WithPanicHandler(func(v interface{}) {
		logutil.Errorf("print worker panic: %v", v)
	}))
	if err != nil {
		return nil, moerr.NewInternalError(ctx, "create print pool: %v", err)
	}
	defer pool.Release()

	out := make([]string, len(msgs))
	var wg sync.WaitGroup
	for i, msg := range msgs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, moerr.NewInternalError(ctx, "print batch canceled: %v", ctx.Err())
		default:
		}
		i, msg := i, msg
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			text, err := p.Format(msg)
			if err != nil {
				logutil.Errorf("print message %d: %v", i, err)
				out[i] = errorText(err)
				return
			}
			out[i] = text
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, moerr.NewInternalError(ctx, "submit print task: %v", err)
		}
	}
	wg.Wait()
	return out, nil
}

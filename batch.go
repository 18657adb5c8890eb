package rpcwire

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DecodeBatch applies [DecodeRequest] to each input in order and returns the
// decoded requests in the same order. Decoding is all-or-nothing: the first
// input that fails stops the batch and its [*DecodeError] is returned with
// no partial results. Inputs after the failing one are not decoded.
//
// This is not a batch-array envelope decoder; each element of inputs is one
// complete JSON-RPC message.
func DecodeBatch(inputs [][]byte) ([]*Request, error) {
	reqs := make([]*Request, 0, len(inputs))

	for _, in := range inputs {
		req, err := DecodeRequest(in)
		if err != nil {
			return nil, err
		}

		reqs = append(reqs, req)
	}

	return reqs, nil
}

// DecodeBatchConcurrent is [DecodeBatch] with the success path fanned out
// across GOMAXPROCS workers. The contract is identical: results keep input
// order, decoding is all-or-nothing, and on failure the error returned is
// the one for the first failing input in order — later inputs may still
// have been decoded internally, but that work is never observable.
func DecodeBatchConcurrent(inputs [][]byte) ([]*Request, error) {
	reqs := make([]*Request, len(inputs))
	errs := make([]error, len(inputs))

	var g errgroup.Group

	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, in := range inputs {
		g.Go(func() error {
			reqs[i], errs[i] = DecodeRequest(in)
			return nil
		})
	}

	// Workers never return errors; failures are reconciled by position so
	// the reported error matches the sequential form.
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return reqs, nil
}

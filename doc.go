// Package influenciae estimates how much each training sample influences a
// trained model's parameters and its predictions.
//
// What is in the box?
//
//	A small, deterministic toolkit built around one question: "if this
//	training point were removed, how would the model change?"
//		• Inverse-Hessian-vector products: exact (pseudo-inverse) and
//		  matrix-free (conjugate gradient on a model's tail)
//		• Influence vectors, Cook's-distance style influence values,
//		  group influence and per-row top-k most influential samples
//		• A dense matrix toolkit and replayable batched datasets
//
// Subpackages:
//
//	data/        samples, batches, replayable batched datasets
//	ihvp/        Exact and ConjugateGradient inverse-Hessian-vector backends
//	influence/   influence Calculator (vectors, values, groups, top-k)
//	matrix/      dense row-major matrices, pseudo-inverse, msgpack codec
//	model/       differentiable models: gradients and Hessian-vector products
//	topk/        bounded per-row top-k accumulator
//
// Quick sketch:
//
//	net, _ := model.NewSequential(4, model.SquaredError{}, model.NewDense(4, 1))
//	ds, _ := data.New(samples, 2)
//	calc, _ := influence.NewFromDataset(net, ds)
//	scores, _ := calc.ComputeInfluenceValues(ds, nil)
//
// Errors returned anywhere in the module match one of ErrConfiguration,
// ErrShape or ErrSizeMismatch via errors.Is.
//
//	go get github.com/MurphLaws/influenciae
package influenciae

package usecase

import (
	"context"
	"fmt"
	"maps"
	"strconv"

	"nextact/internal/training"
	"nextact/pkg/textclf"
)

// Train loads the corpus, fits a pipeline on a stratified split, evaluates it on the
// held-out rows and saves the artifact. Evaluation never blocks the artifact from being written.
func (uc *implUseCase) Train(ctx context.Context, input training.TrainInput) (training.TrainOutput, error) {
	if input.OutputPath == "" {
		return training.TrainOutput{}, training.ErrOutputPathRequired
	}

	examples, err := uc.repo.ListExamples(ctx, input.Corpus)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Train ListExamples: %v", err)
		return training.TrainOutput{}, err
	}
	if len(examples) == 0 {
		return training.TrainOutput{}, training.ErrEmptyCorpus
	}

	testSize, seed := input.TestSize, input.Seed
	if testSize == 0 {
		testSize = textclf.DefaultTestSize
	}
	if seed == 0 {
		seed = textclf.DefaultSeed
	}

	train, test, err := textclf.Split(examples, testSize, seed)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Train Split: %v", err)
		return training.TrainOutput{}, fmt.Errorf("%w: %v", training.ErrTrainFailed, err)
	}
	uc.l.Infof(ctx, "uc.Train: %d examples, %d train / %d test", len(examples), len(train), len(test))

	opts := textclf.DefaultTrainOptions()
	if input.MinDF > 0 {
		opts.MinDF = input.MinDF
	}
	if input.MaxIter > 0 {
		opts.MaxIter = input.MaxIter
	}
	opts.Progress = input.Progress

	if err := ctx.Err(); err != nil {
		return training.TrainOutput{}, err
	}
	pipeline, stats, err := textclf.Train(train, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Train textclf.Train: %v", err)
		return training.TrainOutput{}, fmt.Errorf("%w: %v", training.ErrTrainFailed, err)
	}
	if !stats.Converged {
		uc.l.Warnf(ctx, "uc.Train: solver stopped after %d iterations without converging (loss %.6f)", stats.Iterations, stats.Loss)
	}

	report := textclf.Evaluate(pipeline, test)
	uc.l.Infof(ctx, "uc.Train: accuracy %.4f on %d held-out examples", report.Accuracy, report.Support)
	uc.l.Debugf(ctx, "uc.Train: classification report\n%s", report.String())

	artifact := textclf.NewArtifact(pipeline, stats, uc.now())
	artifact.Metadata = uc.buildMetadata(input, testSize, seed, len(train), len(test))

	if err := textclf.SaveArtifact(input.OutputPath, artifact); err != nil {
		uc.l.Errorf(ctx, "uc.Train SaveArtifact: %v", err)
		return training.TrainOutput{}, err
	}

	return training.TrainOutput{
		Report:       report,
		Stats:        stats,
		Labels:       artifact.Labels,
		TrainSize:    len(train),
		TestSize:     len(test),
		ArtifactPath: input.OutputPath,
	}, nil
}

func (uc *implUseCase) buildMetadata(input training.TrainInput, testSize float64, seed uint64, nTrain, nTest int) map[string]string {
	meta := maps.Clone(input.Metadata)
	if meta == nil {
		meta = make(map[string]string)
	}
	meta["test_size"] = strconv.FormatFloat(testSize, 'f', -1, 64)
	meta["seed"] = strconv.FormatUint(seed, 10)
	meta["train_examples"] = strconv.Itoa(nTrain)
	meta["test_examples"] = strconv.Itoa(nTest)
	return meta
}

// Command analyze_audio runs the room-response analysis pipeline
// against a recorded WAV file and prints the result as JSON.
//
// Usage:
//
//	analyze_audio [flags] <recorded_file> <signal_id> [<output_file> [<room_json>]]
//
// room_json, when given, is a path to a JSON file with keys
// room_length_feet, room_width_feet, room_height_feet (the legacy
// room_length/room_width/room_height spelling is also accepted).
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/pflag"

	"github.com/sonara/roomresponse/measure/roomresponse"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		signalID       string
		fftSize        int
		smoothingFrac  float64
		referenceHz    float64
		lambda         float64
		preWindowMS    float64
		postWindowMS   float64
		displayPoints  int
		modeMax        int
		modeSpacing    float64
		spectralStats  bool
		verbose        bool
	)

	pflag.IntVar(&fftSize, "fft-size", roomresponse.DefaultConfig().FFTSize, "FFT length used by the spectrum extractor")
	pflag.Float64Var(&smoothingFrac, "smoothing", roomresponse.DefaultConfig().SmoothingFraction, "fractional-octave smoothing width")
	pflag.Float64Var(&referenceHz, "reference-hz", roomresponse.DefaultConfig().ReferenceFreqHz, "normalization anchor frequency")
	pflag.Float64Var(&lambda, "lambda", roomresponse.DefaultConfig().RegularizationLambda, "deconvolution regularization term")
	pflag.Float64Var(&preWindowMS, "pre-window-ms", roomresponse.DefaultConfig().PreWindowMS, "impulse window lead time")
	pflag.Float64Var(&postWindowMS, "post-window-ms", roomresponse.DefaultConfig().PostWindowMS, "impulse window trail time")
	pflag.IntVar(&displayPoints, "display-points", roomresponse.DefaultConfig().DisplayPoints, "log-frequency resampler output count")
	pflag.IntVar(&modeMax, "mode-max", roomresponse.DefaultConfig().ModeMax, "maximum number of reported room modes")
	pflag.Float64Var(&modeSpacing, "mode-spacing", roomresponse.DefaultConfig().ModeMinSpacingOctaves, "minimum room-mode spacing in octaves")
	pflag.BoolVar(&spectralStats, "spectral-stats", roomresponse.DefaultConfig().ComputeSpectralStats, "attach spectral shape descriptors to the result")
	pflag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: analyze_audio [flags] <recorded_file> <signal_id> [<output_file> [<room_json>]]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	args := pflag.Args()
	if len(args) < 2 {
		pflag.Usage()
		return 2
	}

	recordedFile := args[0]
	signalID = args[1]

	var outputFile, roomFile string
	if len(args) >= 3 {
		outputFile = args[2]
	}
	if len(args) >= 4 {
		roomFile = args[3]
	}

	recording, err := loadWAV(recordedFile)
	if err != nil {
		log.Error("failed to load recording", "file", recordedFile, "err", err)
		return 1
	}

	var room *roomresponse.Room
	if roomFile != "" {
		room, err = loadRoom(roomFile)
		if err != nil {
			log.Error("failed to load room dimensions", "file", roomFile, "err", err)
			return 1
		}
	}

	registry := roomresponse.NewDefaultRegistry()

	opts := []roomresponse.Option{
		roomresponse.WithFFTSize(fftSize),
		roomresponse.WithSmoothingFraction(smoothingFrac),
		roomresponse.WithReferenceFreqHz(referenceHz),
		roomresponse.WithRegularizationLambda(lambda),
		roomresponse.WithWindowMS(preWindowMS, postWindowMS),
		roomresponse.WithDisplayPoints(displayPoints),
		roomresponse.WithModeLimits(modeMax, modeSpacing),
		roomresponse.WithSpectralStats(spectralStats),
	}

	result, err := roomresponse.Analyze(recording, signalID, room, registry, opts...)
	if err != nil {
		log.Error("analysis failed", "err", err)
		return 1
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Error("failed to encode result", "err", err)
		return 1
	}

	if outputFile == "" {
		fmt.Println(string(encoded))
		return 0
	}

	if err := os.WriteFile(outputFile, encoded, 0o644); err != nil {
		log.Error("failed to write output file", "file", outputFile, "err", err)
		return 1
	}

	log.Info("wrote analysis result", "file", outputFile)
	return 0
}

// loadWAV decodes a mono or multi-channel WAV file into a
// roomresponse.Recording, downmixing multi-channel audio by averaging
// channels and normalizing integer PCM to the [-1, 1] range.
func loadWAV(path string) (roomresponse.Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return roomresponse.Recording{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return roomresponse.Recording{}, fmt.Errorf("%s is not a valid WAV file", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return roomresponse.Recording{}, fmt.Errorf("decode %s: %w", path, err)
	}

	samples := downmixToMono(buf)

	return roomresponse.Recording{
		Samples:    samples,
		SampleRate: int(decoder.SampleRate),
	}, nil
}

func downmixToMono(buf *audio.IntBuffer) []float64 {
	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}

	fullScale := math.Pow(2, float64(buf.SourceBitDepth-1))
	if fullScale <= 0 {
		fullScale = math.MaxInt16
	}

	frameCount := len(buf.Data) / channels
	samples := make([]float64, frameCount)

	for i := 0; i < frameCount; i++ {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch])
		}
		samples[i] = sum / float64(channels) / fullScale
	}

	return samples
}

// roomDimensions mirrors the keys the CLI's external interface
// accepts, including the legacy `_feet`-less spelling.
type roomDimensions struct {
	LengthFeet float64 `json:"room_length_feet"`
	WidthFeet  float64 `json:"room_width_feet"`
	HeightFeet float64 `json:"room_height_feet"`
	Length     float64 `json:"room_length"`
	Width      float64 `json:"room_width"`
	Height     float64 `json:"room_height"`
}

func loadRoom(path string) (*roomresponse.Room, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var dims roomDimensions
	if err := json.Unmarshal(raw, &dims); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	room := &roomresponse.Room{
		LengthFt: firstNonZero(dims.LengthFeet, dims.Length),
		WidthFt:  firstNonZero(dims.WidthFeet, dims.Width),
		HeightFt: firstNonZero(dims.HeightFeet, dims.Height),
	}

	return room, nil
}

func firstNonZero(a, b float64) float64 {
	if a != 0 {
		return a
	}
	return b
}

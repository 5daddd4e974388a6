package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	motion "github.com/tpelkonen/go-motion"
)

func main() {
	// Command-line flags
	var (
		configPath = flag.String("config", "", "Path to a YAML or JSON motion config file")
		curveName  = flag.String("curve", "", "Name of a curve from the config to sample")
		samples    = flag.Int("samples", defaultSamples, "Number of samples across t in [0, 1]")
		stepper    = flag.String("stepper", "", "Name of a stepper from the config to trace")
		target     = flag.Float64("target", defaultTarget, "Target value for the stepper trace")
		tickRate   = flag.Float64("tick-rate", defaultTickRate, "Stepper ticks per second")
		duration   = flag.Float64("duration", defaultDuration, "Stepper trace length in seconds")
		demo       = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	if *configPath == "" {
		log.Fatal("either -demo or -config is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch {
	case *curveName != "":
		cc, ok := cfg.Curves[*curveName]
		if !ok {
			log.Fatalf("No curve %q in config", *curveName)
		}
		curve, err := cc.BuildScalar()
		if err != nil {
			log.Fatalf("Failed to build curve %q: %v", *curveName, err)
		}
		traceCurve(curve, *samples)

	case *stepper != "":
		sc, ok := cfg.Steppers[*stepper]
		if !ok {
			log.Fatalf("No stepper %q in config", *stepper)
		}
		interp, err := sc.BuildScalar(0)
		if err != nil {
			log.Fatalf("Failed to build stepper %q: %v", *stepper, err)
		}
		traceStepper(interp, *target, *tickRate, *duration)

	default:
		log.Fatal("one of -curve or -stepper is required with -config")
	}
}

func loadConfig(path string) (*motion.MotionConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return motion.LoadJSON(f)
	default:
		return motion.LoadYAML(f)
	}
}

// traceCurve prints t,value CSV rows for samples spaced evenly across [0, 1].
func traceCurve(curve motion.ParamCurve[motion.Scalar], samples int) {
	fmt.Println("t,value")
	for i := 0; i < samples; i++ {
		t := sampleTime(i, samples)
		fmt.Printf("%.6f,%.6f\n", t, float64(curve.Get(t)))
	}
}

// traceStepper prints t,value CSV rows for a stepper chasing target at a
// fixed tick rate.
func traceStepper(interp motion.TickInterpolator[motion.Scalar], target, tickRate, duration float64) {
	dt := time.Duration(float64(time.Second) / tickRate)
	ticks := int(duration * tickRate)

	interp.SetTarget(motion.Scalar(target))

	fmt.Println("t,value")
	fmt.Printf("%.6f,%.6f\n", 0.0, float64(interp.Get()))
	for i := 1; i <= ticks; i++ {
		interp.Tick(dt)
		fmt.Printf("%.6f,%.6f\n", float64(i)/tickRate, float64(interp.Get()))
	}
}

func sampleTime(i, samples int) float64 {
	if samples <= 1 {
		return 0
	}
	return float64(i) / float64(samples-1)
}

func runDemo() {
	fmt.Println("=== Go Motion Library Demo ===")

	// Demo 1: Parametric curves
	fmt.Println("1. Parametric Curves")
	fmt.Println("--------------------")

	easing := motion.LinearUniform[motion.Scalar](0, 0.8, 1)
	fmt.Println("\nUniform scalar curve through 0, 0.8, 1:")
	for i := 0; i < demoCurveSamples; i++ {
		t := sampleTime(i, demoCurveSamples)
		fmt.Printf("  t=%.2f  value=%.3f\n", t, float64(easing.Get(t)))
	}

	path := motion.LinearUniform(
		motion.V3(0, 0, 0),
		motion.V3(1, 2, 0),
		motion.V3(3, 2, 1),
	)
	fmt.Println("\nUniform 3D path through three waypoints:")
	for i := 0; i < demoCurveSamples; i++ {
		t := sampleTime(i, demoCurveSamples)
		p := path.Get(t)
		fmt.Printf("  t=%.2f  point=(%.2f, %.2f, %.2f)\n", t, p.X, p.Y, p.Z)
	}

	// Demo 2: Linear steppers
	fmt.Println("\n2. Linear Steppers")
	fmt.Println("------------------")

	aim := motion.NewAimStepper(motion.NewPitchYaw(demoAimStartYaw, 0), demoAimSpeed)
	aim.SetTarget(motion.NewPitchYaw(demoAimTargetYaw, 0))

	fmt.Printf("\nAiming from yaw %.2f to %.2f across the seam at %.1f rad/s:\n",
		demoAimStartYaw, demoAimTargetYaw, demoAimSpeed)
	dt := time.Second / demoTicksPerSecond
	for i := 0; i < demoStepperTicks && !aim.Settled(); i++ {
		aim.Tick(dt)
		fmt.Printf("  tick %2d  yaw=%.3f\n", i+1, aim.Get().Y)
	}

	// Demo 3: Spring steppers
	fmt.Println("\n3. Spring Steppers")
	fmt.Println("------------------")

	critical := motion.NewCriticallyDampedScalarSpring(0, demoSpringConstant)
	underdamped := motion.NewScalarSpring(0, demoSpringConstant, demoLightDamping)
	critical.SetTarget(1)
	underdamped.SetTarget(1)

	fmt.Printf("\nSpring constant %.0f, critically damped vs damping %.1f:\n",
		demoSpringConstant, demoLightDamping)
	for i := 0; i < demoStepperTicks; i++ {
		critical.Tick(dt)
		underdamped.Tick(dt)
		if (i+1)%demoPrintEvery == 0 {
			fmt.Printf("  tick %2d  critical=%.4f  underdamped=%.4f\n",
				i+1, float64(critical.Get()), float64(underdamped.Get()))
		}
	}

	fmt.Println("\n=== Demo Complete ===")
}

package main

// Default command-line flag values
const (
	defaultSamples  = 50   // Curve trace samples across [0, 1]
	defaultTarget   = 1.0  // Stepper trace target
	defaultTickRate = 60.0 // Ticks per second
	defaultDuration = 2.0  // Trace length in seconds
)

// Demo parameters
const (
	demoCurveSamples   = 5
	demoStepperTicks   = 40
	demoTicksPerSecond = 60
	demoPrintEvery     = 5

	demoAimSpeed       = 2.0 // Radians per second
	demoSpringConstant = 80.0
	demoLightDamping   = 4.0
)

// Yaw endpoints straddling the wrap seam at pi
const (
	demoAimStartYaw  = 3.0
	demoAimTargetYaw = -3.0
)

package cmd

// scenarioConfig is the YAML shape accepted by the trace command: a
// prebuilt turn list, since turn generation from raw geometry happens in
// the (external, not-modeled-here) intersection stage, reduced to the
// fields the core actually consumes.
type scenarioConfig struct {
	Mode   string       `yaml:"mode"`
	Turns  []turnConfig `yaml:"turns"`
	Rings0 int          `yaml:"rings0"`
	Rings1 int          `yaml:"rings1"`
}

type turnConfig struct {
	Point  [2]float32    `yaml:"point"`
	Method string        `yaml:"method"`
	Op0    operationConf `yaml:"op0"`
	Op1    operationConf `yaml:"op1"`
}

type operationConf struct {
	Segment  int    `yaml:"segment"`
	Fraction [2]int `yaml:"fraction"` // numerator, denominator
	Class    string `yaml:"class"`
}

func defaultScenario() scenarioConfig {
	return scenarioConfig{
		Mode:   "union",
		Rings0: 4,
		Rings1: 4,
		Turns: []turnConfig{
			{
				Point:  [2]float32{5, 0},
				Method: "touches",
				Op0:    operationConf{Segment: 0, Fraction: [2]int{1, 2}, Class: "union"},
				Op1:    operationConf{Segment: 0, Fraction: [2]int{1, 2}, Class: "union"},
			},
			{
				Point:  [2]float32{5, 0},
				Method: "touches",
				Op0:    operationConf{Segment: 0, Fraction: [2]int{1, 2}, Class: "union"},
				Op1:    operationConf{Segment: 1, Fraction: [2]int{1, 2}, Class: "union"},
			},
		},
	}
}

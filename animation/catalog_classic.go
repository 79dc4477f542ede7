package animation

// ClassicLEDs is the number of LEDs on the first revision of the ornament,
// which has no RGB LED.
const ClassicLEDs = 10

// Classic returns the load-only catalog of the 10 LED ornament.
func Classic() *Catalog {
	return &Catalog{
		Name: "classic",
		Mono: MonoSpec(ClassicLEDs, ClassicLEDs/2),
		Animations: []Animation{
			{Name: "heartbeat", Mono: heartbeatClassic},
			{Name: "shooting-star", Mono: shootingStarClassic},
			{Name: "butterfly", Mono: butterflyClassic},
			{Name: "soft-flashing", Mono: softFlashingClassic()},
			{Name: "kitt", Mono: kittClassic},
			{Name: "chase", Mono: chaseClassic},
			{Name: "fading-sections", Mono: fadingSectionsClassic},
			{Name: "level-up", Mono: levelUpClassic},
			{Name: "shooting-stars", Mono: shootingStarsClassic},
			{Name: "stepping", Mono: steppingClassic},
			{Name: "flasher", Mono: flasherClassic},
			{Name: "ping-pong", Mono: pingPongClassic()},
			{Name: "ying-yang", Mono: yingYangClassic},
			{Name: "race", Mono: raceClassic()},
			{Name: "off", Mono: Program{fillClassic(Forever, 0)}},
		},
	}
}

// fillClassic loads the same level into every LED.
func fillClassic(ms uint16, level int8) Instruction {
	values := make([]int8, ClassicLEDs)
	for i := range values {
		values[i] = level
	}
	return Step(ms, LOAD, 0, values...)
}

// dotClassic lights a single LED.
func dotClassic(ms uint16, pos int) Instruction {
	values := make([]int8, ClassicLEDs)
	values[pos] = MaxLevel
	return Step(ms, LOAD, 0, values...)
}

var heartbeatClassic = Program{
	fillClassic(150, 15),
	fillClassic(100, 0),
	fillClassic(100, 15),
	fillClassic(33, 7),
	fillClassic(33, 4),
	fillClassic(33, 2),
	fillClassic(33, 1),
	fillClassic(300, 0),
}

var shootingStarClassic = Program{
	Step(100, LOAD, 0, 15, 0, 0, 0, 0, 0, 0, 0, 5, 10),
	Step(100, LOAD, 0, 10, 15, 0, 0, 0, 0, 0, 0, 0, 5),
	Step(100, LOAD, 0, 5, 10, 15, 0, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 5, 10, 15, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 5, 10, 15, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 5, 10, 15, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 5, 10, 15, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 5, 10, 15, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 0, 5, 10, 15, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10, 15),
}

var butterflyClassic = Program{
	Step(150, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15),
	Step(150, LOAD, 0, 15, 0, 0, 0, 0, 0, 0, 0, 15, 15),
	Step(150, LOAD, 0, 15, 15, 0, 0, 0, 0, 0, 15, 15, 15),
	Step(150, LOAD, 0, 15, 15, 15, 0, 0, 0, 15, 15, 15, 15),
	Step(150, LOAD, 0, 15, 15, 15, 15, 0, 15, 15, 15, 15, 15),
	Step(150, LOAD, 0, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15),
}

// softFlashingClassic ramps every LED up and back down one level at a time.
func softFlashingClassic() Program {
	p := Program{fillClassic(100, 0)}
	for level := int8(1); level < MaxLevel; level++ {
		p = append(p, fillClassic(50, level))
	}
	p = append(p, fillClassic(100, MaxLevel))
	for level := int8(MaxLevel - 1); level > 0; level-- {
		p = append(p, fillClassic(50, level))
	}
	return p
}

var kittClassic = Program{
	Step(100, LOAD, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 15, 0, 0, 15, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 15),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 15, 0, 0, 15, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 15, 0, 0, 15, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 15),
	Step(100, LOAD, 0, 15, 0, 0, 15, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0),
}

var chaseClassic = Program{
	Step(150, LOAD, 0, 0, 0, 2, 6, 15, 0, 0, 2, 6, 15),
	Step(150, LOAD, 0, 15, 0, 0, 2, 6, 15, 0, 0, 2, 6),
	Step(150, LOAD, 0, 6, 15, 0, 0, 2, 6, 15, 0, 0, 2),
	Step(150, LOAD, 0, 2, 6, 15, 0, 0, 2, 6, 15, 0, 0),
	Step(150, LOAD, 0, 0, 2, 6, 15, 0, 0, 2, 6, 15, 0),
}

var fadingSectionsClassic = Program{
	Step(40, LOAD, 0, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15),
	Step(40, LOAD, 0, 0, 7, 0, 7, 0, 7, 0, 7, 0, 7),
	Step(40, LOAD, 0, 0, 4, 0, 4, 0, 4, 0, 4, 0, 4),
	Step(40, LOAD, 0, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2),
	Step(40, LOAD, 0, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1),
	fillClassic(100, 0),
	Step(40, LOAD, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0),
	Step(40, LOAD, 0, 7, 0, 7, 0, 7, 0, 7, 0, 7, 0),
	Step(40, LOAD, 0, 4, 0, 4, 0, 4, 0, 4, 0, 4, 0),
	Step(40, LOAD, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0),
	Step(40, LOAD, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0),
	fillClassic(100, 0),
}

var levelUpClassic = Program{
	Step(160, LOAD, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0),
	Step(140, LOAD, 0, 0, 0, 0, 15, 0, 15, 0, 0, 0, 0),
	Step(120, LOAD, 0, 0, 0, 15, 0, 0, 0, 15, 0, 0, 0),
	Step(100, LOAD, 0, 0, 15, 0, 0, 0, 0, 0, 15, 0, 15),
	Step(80, LOAD, 0, 15, 0, 0, 0, 0, 0, 0, 0, 15, 0),
	fillClassic(20, 15),
	fillClassic(80, 0),
	fillClassic(20, 15),
	fillClassic(80, 0),
	fillClassic(20, 15),
	fillClassic(200, 0),
}

var shootingStarsClassic = Program{
	Step(100, LOAD, 0, 15, 0, 0, 15, 10, 5, 0, 0, 5, 10),
	Step(100, LOAD, 0, 10, 15, 15, 10, 5, 0, 0, 0, 0, 5),
	Step(100, LOAD, 0, 5, 15, 15, 5, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 15, 10, 10, 15, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 10, 5, 5, 10, 15, 0, 0, 0, 0, 15),
	Step(100, LOAD, 0, 5, 0, 0, 5, 10, 15, 0, 0, 15, 10),
	Step(100, LOAD, 0, 0, 0, 0, 0, 5, 10, 15, 15, 10, 5),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 5, 15, 15, 5, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 15, 10, 10, 15, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 15, 10, 5, 5, 10, 15),
}

var steppingClassic = Program{
	Step(200, LOAD, 0, 0, 0, 15, 0, 0, 15, 0, 0, 15, 0),
	Step(200, LOAD, 0, 0, 15, 0, 0, 15, 0, 0, 15, 0, 0),
	Step(200, LOAD, 0, 15, 0, 0, 15, 0, 0, 15, 0, 0, 15),
}

var flasherClassic = Program{
	fillClassic(500, 15),
	fillClassic(500, 0),
}

// pingPongClassic bounces a single dot from the last LED to the first and
// back.
func pingPongClassic() Program {
	var p Program
	for pos := ClassicLEDs - 1; pos >= 0; pos-- {
		p = append(p, dotClassic(60, pos))
	}
	p = append(p, dotClassic(60, ClassicLEDs-1))
	for pos := 0; pos < ClassicLEDs-1; pos++ {
		p = append(p, dotClassic(60, pos))
	}
	return p
}

var yingYangClassic = Program{
	Step(100, LOAD, 0, 0, 0, 2, 5, 15, 0, 0, 2, 5, 15),
	Step(100, LOAD, 0, 15, 0, 0, 2, 5, 15, 0, 0, 2, 5),
	Step(100, LOAD, 0, 5, 15, 0, 0, 2, 5, 15, 0, 0, 2),
	Step(100, LOAD, 0, 2, 5, 15, 0, 0, 2, 5, 15, 0, 0),
	Step(100, LOAD, 0, 0, 2, 5, 15, 0, 0, 2, 5, 15, 0),
	Step(100, LOAD, 0, 0, 0, 2, 5, 15, 0, 0, 2, 5, 15),
	Step(100, LOAD, 0, 0, 2, 5, 15, 0, 0, 2, 5, 15, 0),
	Step(100, LOAD, 0, 2, 5, 15, 0, 0, 2, 5, 15, 0, 0),
	Step(100, LOAD, 0, 5, 15, 0, 0, 2, 5, 15, 0, 0, 2),
	Step(100, LOAD, 0, 15, 0, 0, 2, 5, 15, 0, 0, 2, 5),
}

// raceClassic runs three laps of a single dot, each faster than the last.
func raceClassic() Program {
	var p Program
	for _, ms := range []uint16{250, 120, 70} {
		for pos := ClassicLEDs - 1; pos >= 0; pos-- {
			p = append(p, dotClassic(ms, pos))
		}
	}
	return p
}

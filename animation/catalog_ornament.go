package animation

// OrnamentLEDs is the number of monochrome LEDs on the ornament board.
const OrnamentLEDs = 12

// OrnamentSplit is the first LED of the right-hand side of the board.
const OrnamentSplit = 6

// Ornament returns the catalog of the 12 LED ornament with an RGB LED on top.
func Ornament() *Catalog {
	return &Catalog{
		Name: "ornament",
		Mono: MonoSpec(OrnamentLEDs, OrnamentSplit),
		RGB:  RGBSpec(),
		Animations: []Animation{
			{Name: "retro", Mono: retroMono, RGB: retroRGB},
			{Name: "soft-flashing", Mono: softFlashingMono, RGB: softFlashingRGB},
			{Name: "disco", Mono: discoMono, RGB: discoRGB},
			{Name: "star-launch", Mono: starLaunchMono, RGB: starLaunchRGB},
			{Name: "criss-cross", Mono: crissCrossMono, RGB: crissCrossRGB},
			{Name: "flasher", Mono: flasherMono, RGB: flasherRGB},
			{Name: "kitt", Mono: kittMono, RGB: kittRGB},
			{Name: "ping-pong", Mono: pingPongMono, RGB: pingPongRGB},
			{Name: "fade-ring", Mono: fadeRingMono, RGB: fadeRingRGB},
			{Name: "ying-yang", Mono: yingYangMono, RGB: yingYangRGB},
			{Name: "pseudo-random-fade", Mono: pseudoRandomFadeMono, RGB: pseudoRandomFadeRGB},
			{Name: "flicker", Mono: flickerMono, RGB: flickerRGB},
			{Name: "race", Mono: raceMono, RGB: raceRGB},
			{Name: "sparkle", Mono: sparkleMono, RGB: sparkleRGB},
			{Name: "ice", Mono: iceMono, RGB: iceRGB},
			{Name: "split", Mono: splitMono, RGB: splitRGB},
			{Name: "stepping", Mono: steppingMono, RGB: steppingRGB},
			// Reserved, keep last.
			{Name: "off", Mono: offMono, RGB: offRGB},
		},
	}
}

var retroMono = Program{
	Step(133, LOAD, 0, 15, 0, 15, 0, 0, 15, 15, 0, 15, 0, 0, 15),
	Step(133, LOAD, 0, 0, 15, 0, 15, 15, 0, 0, 15, 0, 15, 15, 0),
	Step(133, LOAD, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0),
	Step(133, LOAD, 0, 0, 15, 0, 15, 15, 0, 0, 15, 0, 15, 15, 0),
	Step(133, LOAD, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0),
	Step(133, LOAD, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0),
	Step(133, LOAD, 0, 15, 0, 15, 0, 0, 15, 15, 0, 0, 15, 0, 15),
	Step(133, LOAD, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 15, 0, 0),
}

var retroRGB = Program{
	Step(133, LOAD, 0, 15, 0, 0),
	Step(665, LOAD, 0, 0, 0, 0),
	Step(133, LOAD, 0, 15, 0, 0),
	Step(133, LOAD, 0, 0, 0, 0),
}

var softFlashingMono = Program{
	Step(125, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(125, ADD|REPEAT, 14, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
	Step(125, LOAD, 0, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15),
	Step(125, ADD|REPEAT, 14, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1),
}

var softFlashingRGB = Program{
	Step(125, LOAD, 0, 0, 0, 0),
	Step(125, ADD|REPEAT, 14, 1, 0, 0),
	Step(125, LOAD, 0, 15, 0, 0),
	Step(125, ADD|REPEAT, 14, -1, 0, 0),
}

var discoMono = Program{
	Step(40, LOAD, 0, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15),
	Step(40, DIV|REPEAT, 3, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(40, LOAD, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0),
	Step(40, DIV|REPEAT, 3, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
}

var discoRGB = Program{
	Step(40, LOAD, 0, 15, 0, 15),
	Step(40, DIV|REPEAT, 3, 2, 1, 2),
	Step(100, LOAD, 0, 0, 0, 0),
	Step(40, LOAD, 0, 0, 15, 0),
	Step(40, DIV|REPEAT, 3, 2, 1, 2),
	Step(100, LOAD, 0, 0, 0, 0),
}

var starLaunchMono = Program{
	Step(400, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(200, LOAD, 0, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(200, USOURCE|REPEAT, 18, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5),
	Step(200, LOAD, 0, 15, 15, 15, 15, 15, 15, 10, 15, 15, 15, 15, 15),
	Step(200, DSOURCE|REPEAT, 16, 0, 0, 0, 0, 0, -5, -5, 0, 0, 0, 0, 0),
}

var starLaunchRGB = Program{
	Step(4000, LOAD, 0, 0, 0, 0),
	Step(800, LOAD, 0, 15, 15, 0),
	Step(200, ADD|REPEAT, 9, 0, -1, 0),
	Step(200, ADD|REPEAT, 4, -3, -1, 0),
	Step(200, LOAD, 0, 0, 0, 0),
}

var crissCrossMono = Program{
	Step(350, LOAD, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(350, LOAD, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(350, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0),
	Step(350, LOAD, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0),
	Step(350, LOAD, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0),
	Step(350, LOAD, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0),
	Step(350, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0),
	Step(350, LOAD, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(350, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0),
	Step(350, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15),
	Step(350, LOAD, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(350, LOAD, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0),
}

var crissCrossRGB = Program{
	Step(1050, LOAD, 0, 0, 15, 15),
	Step(1050, LOAD, 0, 15, 0, 0),
	Step(1050, LOAD, 0, 2, 10, 10),
	Step(1050, LOAD, 0, 15, 15, 0),
}

var flasherMono = Program{
	Step(500, LOAD, 0, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15),
	Step(500, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
}

var flasherRGB = Program{
	Step(500, LOAD, 0, 7, 7, 7),
	Step(500, LOAD, 0, 0, 0, 0),
}

var kittMono = Program{
	Step(200, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5),
	Step(100, LOAD, 0, 10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10),
	Step(100, LOAD, 0, 15, 10, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15),
	Step(100, LOAD, 0, 10, 15, 10, 5, 0, 0, 0, 0, 5, 10, 15, 10),
	Step(100, LOAD, 0, 5, 10, 15, 10, 5, 0, 0, 5, 10, 15, 10, 5),
	Step(100, LOAD, 0, 0, 5, 10, 15, 10, 5, 5, 10, 15, 10, 5, 0),
	Step(100, LOAD, 0, 0, 0, 5, 10, 15, 10, 10, 15, 10, 5, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 5, 10, 15, 15, 10, 5, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 5, 10, 10, 5, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 5, 5, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 0, 5, 5, 0, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 0, 5, 10, 10, 5, 0, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 0, 5, 10, 15, 15, 10, 5, 0, 0, 0),
	Step(100, LOAD, 0, 0, 0, 5, 10, 15, 10, 10, 15, 10, 5, 0, 0),
	Step(100, LOAD, 0, 0, 5, 10, 15, 10, 5, 5, 10, 15, 10, 5, 0),
	Step(100, LOAD, 0, 5, 10, 15, 10, 5, 0, 0, 5, 10, 15, 10, 5),
	Step(100, LOAD, 0, 10, 15, 10, 5, 0, 0, 0, 0, 5, 10, 15, 10),
	Step(100, LOAD, 0, 15, 10, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15),
	Step(100, LOAD, 0, 10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10),
	Step(100, LOAD, 0, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5),
}

var kittRGB = Program{
	Step(800, LOAD, 0, 0, 0, 0),
	Step(100, ADD|REPEAT, 3, 5, 0, 0),
	Step(100, ADD|REPEAT, 3, -5, 0, 0),
	Step(1300, LOAD, 0, 0, 0, 0),
}

var pingPongMono = Program{
	Step(175, LOAD, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(175, RSHIFT|REPEAT, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(175, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(175, LOAD, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0),
	Step(175, RSHIFT|REPEAT, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(175, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(175, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15),
	Step(175, LSHIFT|REPEAT, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(175, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(175, LOAD, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0),
	Step(175, LSHIFT|REPEAT, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(175, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
}

var pingPongRGB = Program{
	Step(1050, LOAD, 0, 15, 15, 0),
	Step(2450, LOAD, 0, 0, 15, 15),
	Step(1400, LOAD, 0, 15, 15, 0),
}

var fadeRingMono = Program{
	Step(40, LOAD, 0, 15, 1, 15, 1, 15, 1, 1, 15, 1, 15, 1, 15),
	Step(40, ADD|REPEAT, 13, -1, 1, -1, 1, -1, 1, 1, -1, 1, -1, 1, -1),
	Step(40, ADD|REPEAT, 13, 1, -1, 1, -1, 1, -1, -1, 1, -1, 1, -1, 1),
}

var fadeRingRGB = Program{
	Step(40, LOAD, 0, 15, 1, 0),
	Step(40, ADD|REPEAT, 13, -1, 0, 0),
	Step(40, ADD|REPEAT, 13, 1, 0, 0),
}

var yingYangMono = Program{
	Step(150, LOAD, 0, 0, 5, 10, 15, 0, 0, 0, 5, 10, 15, 0, 0),
	Step(150, RSHIFT|REPEAT, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
}

var yingYangRGB = Program{
	Step(450, LOAD, 0, 2, 6, 15),
	Step(450, LOAD, 0, 15, 8, 1),
}

var pseudoRandomFadeMono = Program{
	Step(66, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, 1, 0, 0, 0, 0, -1, 0, 0, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 1, 0),
	Step(66, ADD|REPEAT, 14, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 0),
	Step(66, ADD|REPEAT, 14, -1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, 0, 0, 0, -1, 0, 1, 0, 0, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 1),
	Step(66, ADD|REPEAT, 14, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1),
	Step(66, ADD|REPEAT, 14, 0, -1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, 0, 0, 1, 0, 0, 0, 0, -1, 0, 0),
	Step(66, ADD|REPEAT, 14, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0),
}

// The RGB LED fades in while LED 6 fades out on the mono side.
var pseudoRandomFadeRGB = Program{
	Step(9966, LOAD, 0, 0, 0, 0),
	Step(66, ADD|REPEAT, 14, 1, 0, 0),
	Step(66, ADD|REPEAT, 14, -1, 0, 0),
	Step(1980, LOAD, 0, 0, 0, 0),
}

var flickerMono = Program{
	Step(200, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0),
	Step(200, LOAD, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(200, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0),
	Step(200, LOAD, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0),
	Step(200, LOAD, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(200, LOAD, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(200, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15),
	Step(200, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0),
	Step(200, LOAD, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(200, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0),
}

var flickerRGB = Program{
	Step(400, LOAD, 0, 15, 0, 0),
	Step(100, LOAD, 0, 15, 15, 0),
	Step(800, LOAD, 0, 15, 0, 0),
	Step(100, LOAD, 0, 15, 15, 0),
	Step(500, LOAD, 0, 15, 0, 0),
	Step(100, LOAD, 0, 15, 15, 0),
}

// raceLap is one lap of the race at the given speed.
func raceLap(ms uint16) Program {
	return Program{
		Step(ms, LOAD, 0, 5, 10, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		Step(ms, RSHIFT|REPEAT, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		Step(ms, LOAD, 0, 0, 0, 0, 0, 5, 10, 0, 0, 0, 0, 0, 0),
		Step(ms, LOAD, 0, 0, 0, 0, 0, 0, 5, 15, 0, 0, 0, 0, 0),
		Step(ms, LOAD, 0, 0, 0, 0, 0, 0, 0, 10, 15, 0, 0, 0, 0),
		Step(ms, LOAD, 0, 0, 0, 0, 0, 0, 0, 5, 10, 15, 0, 0, 0),
		Step(ms, RSHIFT|REPEAT, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	}
}

// raceFlash flashes the RGB LED once per lap of the given speed.
func raceFlash(ms uint16) Program {
	return Program{
		Step(4*ms, LOAD, 0, 0, 0, 0),
		Step(ms, LOAD, 0, 15, 0, 0),
		Step(ms, ADD|REPEAT, 1, -5, 0, 0),
		Step(6*ms, LOAD, 0, 0, 0, 0),
	}
}

var raceMono = concat(raceLap(100), raceLap(70), raceLap(40))

var raceRGB = concat(raceFlash(100), raceFlash(70), raceFlash(40))

var sparkleMono = Program{
	Step(200, LOAD, 0, 4, 4, 4, 4, 15, 4, 4, 4, 4, 4, 4, 4),
	Step(200, LOAD, 0, 4, 15, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4),
	Step(200, LOAD, 0, 4, 4, 4, 4, 4, 4, 15, 4, 4, 4, 4, 4),
	Step(200, LOAD, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 15, 4),
	Step(200, LOAD, 0, 4, 4, 15, 4, 4, 4, 4, 4, 4, 4, 4, 4),
	Step(200, LOAD, 0, 15, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4),
	Step(200, LOAD, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 15),
	Step(200, LOAD, 0, 4, 4, 4, 15, 4, 4, 4, 4, 4, 4, 4, 4),
	Step(200, LOAD, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 15, 4, 4),
	Step(200, LOAD, 0, 4, 4, 4, 4, 4, 15, 4, 4, 4, 4, 4, 4),
}

var sparkleRGB = Program{
	Step(500, LOAD, 0, 15, 0, 0),
	Step(250, LOAD, 0, 15, 3, 1),
	Step(250, LOAD, 0, 15, 6, 2),
	Step(500, LOAD, 0, 15, 10, 3),
	Step(250, LOAD, 0, 15, 6, 2),
	Step(250, LOAD, 0, 15, 3, 1),
}

var iceMono = Program{
	Step(300, LOAD, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 0),
	Step(300, LOAD, 0, 0, 0, 0, 0, 15, 10, 0, 0, 0, 0, 0, 0),
	Step(300, LOAD, 0, 0, 0, 0, 15, 10, 5, 15, 0, 0, 0, 0, 0),
	Step(300, LOAD, 0, 0, 0, 15, 10, 5, 0, 10, 15, 0, 0, 0, 0),
	Step(300, LOAD, 0, 0, 15, 10, 5, 0, 0, 5, 10, 15, 0, 0, 0),
	Step(300, LOAD, 0, 15, 10, 5, 0, 0, 0, 0, 5, 10, 15, 0, 0),
	Step(300, LOAD, 0, 15, 5, 0, 0, 0, 0, 0, 0, 5, 10, 15, 0),
	Step(300, LOAD, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10, 15),
	Step(300, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 15),
	Step(300, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15),
	Step(300, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
}

var iceRGB = Program{
	Step(194, LOAD, 0, 0, 15, 15),
	Step(194, ADD|REPEAT, 15, 0, -1, 0),
}

var splitMono = Program{
	Step(500, LOAD, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0),
	Step(500, LOAD, 0, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15, 0, 15),
}

var splitRGB = Program{
	Step(333, LOAD, 0, 15, 0, 15),
	Step(333, LOAD, 0, 0, 15, 15),
	Step(334, LOAD, 0, 15, 15, 0),
}

var steppingMono = Program{
	Step(350, LOAD, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
	Step(350, RSHIFT|REPEAT, 10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
}

var steppingRGB = Program{
	Step(350, LOAD, 0, 15, 0, 0),
	Step(350, LOAD, 0, 15, 6, 0),
	Step(350, LOAD, 0, 15, 10, 0),
	Step(350, LOAD, 0, 15, 15, 0),
	Step(350, LOAD, 0, 0, 15, 0),
	Step(350, LOAD, 0, 0, 10, 0),
	Step(350, LOAD, 0, 2, 10, 10),
	Step(350, LOAD, 0, 0, 15, 15),
	Step(350, LOAD, 0, 7, 5, 10),
	Step(350, LOAD, 0, 15, 0, 15),
	Step(350, LOAD, 0, 15, 12, 12),
}

var offMono = Program{
	Step(Forever, LOAD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
}

var offRGB = Program{
	Step(Forever, LOAD, 0, 0, 0, 0),
}

func concat(programs ...Program) Program {
	var p Program
	for _, program := range programs {
		p = append(p, program...)
	}
	return p
}

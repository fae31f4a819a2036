package stat

// AtLevel is the innate value of main and sub stats at a character level,
// before any gear is taken into account.
type AtLevel struct {
	Main int
	Sub  int
}

// MaxLevel is the highest level covered by LevelStats.
const MaxLevel = 90

// LevelStats is indexed by character level (0..MaxLevel).
var LevelStats = [MaxLevel + 1]AtLevel{
	{Main: 0, Sub: 0},     // 0
	{Main: 20, Sub: 56},   // 1
	{Main: 21, Sub: 57},   // 2
	{Main: 22, Sub: 60},   // 3
	{Main: 24, Sub: 62},   // 4
	{Main: 26, Sub: 65},   // 5
	{Main: 27, Sub: 68},   // 6
	{Main: 29, Sub: 70},   // 7
	{Main: 31, Sub: 73},   // 8
	{Main: 33, Sub: 76},   // 9
	{Main: 35, Sub: 78},   // 10
	{Main: 36, Sub: 82},   // 11
	{Main: 38, Sub: 85},   // 12
	{Main: 41, Sub: 89},   // 13
	{Main: 44, Sub: 93},   // 14
	{Main: 46, Sub: 96},   // 15
	{Main: 49, Sub: 100},  // 16
	{Main: 52, Sub: 104},  // 17
	{Main: 54, Sub: 109},  // 18
	{Main: 57, Sub: 113},  // 19
	{Main: 60, Sub: 116},  // 20
	{Main: 63, Sub: 122},  // 21
	{Main: 67, Sub: 127},  // 22
	{Main: 71, Sub: 133},  // 23
	{Main: 74, Sub: 138},  // 24
	{Main: 78, Sub: 144},  // 25
	{Main: 81, Sub: 150},  // 26
	{Main: 85, Sub: 155},  // 27
	{Main: 89, Sub: 162},  // 28
	{Main: 92, Sub: 168},  // 29
	{Main: 97, Sub: 173},  // 30
	{Main: 101, Sub: 181}, // 31
	{Main: 106, Sub: 188}, // 32
	{Main: 110, Sub: 194}, // 33
	{Main: 115, Sub: 202}, // 34
	{Main: 119, Sub: 209}, // 35
	{Main: 124, Sub: 215}, // 36
	{Main: 128, Sub: 223}, // 37
	{Main: 134, Sub: 229}, // 38
	{Main: 139, Sub: 236}, // 39
	{Main: 144, Sub: 244}, // 40
	{Main: 150, Sub: 253}, // 41
	{Main: 155, Sub: 263}, // 42
	{Main: 161, Sub: 272}, // 43
	{Main: 166, Sub: 283}, // 44
	{Main: 171, Sub: 292}, // 45
	{Main: 177, Sub: 302}, // 46
	{Main: 183, Sub: 311}, // 47
	{Main: 189, Sub: 322}, // 48
	{Main: 196, Sub: 331}, // 49
	{Main: 202, Sub: 341}, // 50
	{Main: 204, Sub: 342}, // 51
	{Main: 205, Sub: 344}, // 52
	{Main: 207, Sub: 345}, // 53
	{Main: 209, Sub: 346}, // 54
	{Main: 210, Sub: 347}, // 55
	{Main: 212, Sub: 349}, // 56
	{Main: 214, Sub: 350}, // 57
	{Main: 215, Sub: 351}, // 58
	{Main: 217, Sub: 352}, // 59
	{Main: 218, Sub: 354}, // 60
	{Main: 224, Sub: 355}, // 61
	{Main: 228, Sub: 356}, // 62
	{Main: 236, Sub: 357}, // 63
	{Main: 244, Sub: 358}, // 64
	{Main: 252, Sub: 359}, // 65
	{Main: 260, Sub: 360}, // 66
	{Main: 268, Sub: 361}, // 67
	{Main: 276, Sub: 362}, // 68
	{Main: 284, Sub: 363}, // 69
	{Main: 292, Sub: 364}, // 70
	{Main: 296, Sub: 365}, // 71
	{Main: 300, Sub: 366}, // 72
	{Main: 305, Sub: 367}, // 73
	{Main: 310, Sub: 368}, // 74
	{Main: 315, Sub: 370}, // 75
	{Main: 320, Sub: 372}, // 76
	{Main: 325, Sub: 374}, // 77
	{Main: 330, Sub: 376}, // 78
	{Main: 335, Sub: 378}, // 79
	{Main: 340, Sub: 380}, // 80
	{Main: 345, Sub: 382}, // 81
	{Main: 350, Sub: 384}, // 82
	{Main: 355, Sub: 386}, // 83
	{Main: 360, Sub: 388}, // 84
	{Main: 365, Sub: 390}, // 85
	{Main: 370, Sub: 392}, // 86
	{Main: 375, Sub: 394}, // 87
	{Main: 380, Sub: 396}, // 88
	{Main: 385, Sub: 398}, // 89
	{Main: 390, Sub: 400}, // 90
}

// Level returns the baseline for level and whether the level is defined.
func Level(level int) (AtLevel, bool) {
	if level < 0 || level > MaxLevel {
		return AtLevel{}, false
	}
	return LevelStats[level], true
}

// BaseAtLevel returns the innate value of kind at level.
// GP and CP do not scale and always return 400 and 180.
// Kinds that are neither main nor sub, and undefined levels, yield 0.
func BaseAtLevel(kind Kind, level int) int {
	switch kind {
	case GP:
		return 400
	case CP:
		return 180
	}

	stats, ok := Level(level)
	if !ok {
		return 0
	}
	switch {
	case IsMain(kind):
		return stats.Main
	case IsSub(kind):
		return stats.Sub
	}
	return 0
}

// IsMain reports whether kind follows the main-stat baseline.
func IsMain(kind Kind) bool {
	switch kind {
	case STR, DEX, VIT, INT, MND, PIE, DET:
		return true
	}
	return false
}

// IsSub reports whether kind follows the sub-stat baseline.
func IsSub(kind Kind) bool {
	switch kind {
	case TEN, DH, CRT, SKS, SPS:
		return true
	}
	return false
}

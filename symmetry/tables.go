package symmetry

import "math"

// Projector coefficients. Every table below is stored as its upper triangle
// (row <= col) and mirrored when the bank is built.
const (
	one           = 1.
	half          = 1. / 2
	third         = 1. / 3
	quarter       = 1. / 4
	threeQuarters = 3. / 4
	threeEighths  = 3. / 8

	halfInvSqrt2    = 1 / (2 * math.Sqrt2)
	quarterInvSqrt2 = 1 / (4 * math.Sqrt2)

	fifth           = 1. / 5
	sqrt2Fifteenths = math.Sqrt2 / 15
	twoFifteenths   = 2. / 15
	fourFifteenths  = 4. / 15
)

type entry struct {
	row, col int
	value    float64
}

// table is one projector shared by several labels. Piezoelectric labels
// with no table project to zero; for the other kinds they are not
// implemented.
type table struct {
	labels   []Label
	identity bool
	entries  []entry
}

// piezoTables act on the 18-vector (3 rows of 6 condensed columns). The
// centrosymmetric groups, isotropy and 432 have no entries.
var piezoTables = []table{
	{
		labels: []Label{PGBar43m, PG23},
		entries: []entry{
			{3, 3, third}, {3, 10, third}, {3, 17, third}, {10, 10, third}, {10, 17, third},
			{17, 17, third},
		},
	},
	{
		labels: []Label{PG6, PG4},
		entries: []entry{
			{3, 3, half}, {3, 10, -half}, {4, 4, half}, {4, 9, half}, {9, 9, half},
			{10, 10, half}, {12, 12, half}, {12, 13, half}, {13, 13, half}, {14, 14, one},
		},
	},
	{
		labels: []Label{PG6mm, PG4mm},
		entries: []entry{
			{4, 4, half}, {4, 9, half}, {9, 9, half}, {12, 12, half}, {12, 13, half},
			{13, 13, half}, {14, 14, one},
		},
	},
	{
		labels: []Label{PG622, PG422},
		entries: []entry{
			{3, 3, half}, {3, 10, -half}, {10, 10, half},
		},
	},
	{
		labels: []Label{PGBar6},
		entries: []entry{
			{0, 0, quarter}, {0, 1, -quarter}, {0, 11, -halfInvSqrt2}, {1, 1, quarter},
			{1, 11, halfInvSqrt2}, {5, 5, half}, {5, 6, halfInvSqrt2}, {5, 7, -halfInvSqrt2},
			{6, 6, quarter}, {6, 7, -quarter}, {7, 7, quarter}, {11, 11, half},
		},
	},
	{
		labels: []Label{PGBar62m},
		entries: []entry{
			{5, 5, half}, {5, 6, halfInvSqrt2}, {5, 7, -halfInvSqrt2}, {6, 6, quarter},
			{6, 7, -quarter}, {7, 7, quarter},
		},
	},
	{
		labels: []Label{PG3},
		entries: []entry{
			{0, 0, quarter}, {0, 1, -quarter}, {0, 11, -halfInvSqrt2}, {1, 1, quarter},
			{1, 11, halfInvSqrt2}, {3, 3, half}, {3, 10, -half}, {4, 4, half}, {4, 9, half},
			{5, 5, half}, {5, 6, halfInvSqrt2}, {5, 7, -halfInvSqrt2}, {6, 6, quarter},
			{6, 7, -quarter}, {7, 7, quarter}, {9, 9, half}, {10, 10, half}, {11, 11, half},
			{12, 12, half}, {12, 13, half}, {13, 13, half}, {14, 14, one},
		},
	},
	{
		labels: []Label{PG32},
		entries: []entry{
			{0, 0, quarter}, {0, 1, -quarter}, {0, 11, -halfInvSqrt2}, {1, 1, quarter},
			{1, 11, halfInvSqrt2}, {3, 3, half}, {3, 10, -half}, {10, 10, half}, {11, 11, half},
		},
	},
	{
		labels: []Label{PG3m},
		entries: []entry{
			{4, 4, half}, {4, 9, half}, {5, 5, half}, {5, 6, halfInvSqrt2}, {5, 7, -halfInvSqrt2},
			{6, 6, quarter}, {6, 7, -quarter}, {7, 7, quarter}, {9, 9, half}, {12, 12, half},
			{12, 13, half}, {13, 13, half}, {14, 14, one},
		},
	},
	{
		labels: []Label{PGBar4},
		entries: []entry{
			{3, 3, half}, {3, 10, half}, {4, 4, half}, {4, 9, -half}, {9, 9, half},
			{10, 10, half}, {12, 12, half}, {12, 13, -half}, {13, 13, half}, {17, 17, one},
		},
	},
	{
		labels: []Label{PGBar42m},
		entries: []entry{
			{3, 3, half}, {3, 10, half}, {10, 10, half}, {17, 17, one},
		},
	},
	{
		labels: []Label{PG222},
		entries: []entry{
			{3, 3, one}, {10, 10, one}, {17, 17, one},
		},
	},
	{
		labels: []Label{PGmm2},
		entries: []entry{
			{4, 4, one}, {9, 9, one}, {12, 12, one}, {13, 13, one}, {14, 14, one},
		},
	},
	{
		labels: []Label{PG2},
		entries: []entry{
			{3, 3, one}, {5, 5, one}, {6, 6, one}, {7, 7, one}, {8, 8, one}, {10, 10, one},
			{15, 15, one}, {17, 17, one},
		},
	},
	{
		labels: []Label{PGm, PGBar2},
		entries: []entry{
			{0, 0, one}, {1, 1, one}, {2, 2, one}, {4, 4, one}, {9, 9, one}, {11, 11, one},
			{12, 12, one}, {13, 13, one}, {14, 14, one}, {16, 16, one},
		},
	},
	{labels: []Label{PG1}, identity: true},
}

// elasticTables act on the 21-vector (upper triangle of the 6x6 matrix).
var elasticTables = []table{
	{
		labels: []Label{Iso},
		entries: []entry{
			{0, 0, fifth}, {0, 1, sqrt2Fifteenths}, {0, 2, sqrt2Fifteenths}, {0, 6, fifth},
			{0, 7, sqrt2Fifteenths}, {0, 11, fifth}, {0, 15, twoFifteenths},
			{0, 18, twoFifteenths}, {0, 20, twoFifteenths}, {1, 1, fourFifteenths},
			{1, 2, fourFifteenths}, {1, 6, sqrt2Fifteenths}, {1, 7, fourFifteenths},
			{1, 11, sqrt2Fifteenths}, {1, 15, -sqrt2Fifteenths}, {1, 18, -sqrt2Fifteenths},
			{1, 20, -sqrt2Fifteenths}, {2, 2, fourFifteenths}, {2, 6, sqrt2Fifteenths},
			{2, 7, fourFifteenths}, {2, 11, sqrt2Fifteenths}, {2, 15, -sqrt2Fifteenths},
			{2, 18, -sqrt2Fifteenths}, {2, 20, -sqrt2Fifteenths}, {6, 6, fifth},
			{6, 7, sqrt2Fifteenths}, {6, 11, fifth}, {6, 15, twoFifteenths},
			{6, 18, twoFifteenths}, {6, 20, twoFifteenths}, {7, 7, fourFifteenths},
			{7, 11, sqrt2Fifteenths}, {7, 15, -sqrt2Fifteenths}, {7, 18, -sqrt2Fifteenths},
			{7, 20, -sqrt2Fifteenths}, {11, 11, fifth}, {11, 15, twoFifteenths},
			{11, 18, twoFifteenths}, {11, 20, twoFifteenths}, {15, 15, fifth}, {15, 18, fifth},
			{15, 20, fifth}, {18, 18, fifth}, {18, 20, fifth}, {20, 20, fifth},
		},
	},
	{
		labels: []Label{Cub, PG23, PGmBar3, PG432, PGBar43m, PGmBar3m},
		entries: []entry{
			{0, 0, third}, {0, 6, third}, {0, 11, third}, {1, 1, third}, {1, 2, third},
			{1, 7, third}, {2, 2, third}, {2, 7, third}, {6, 6, third}, {6, 11, third},
			{7, 7, third}, {11, 11, third}, {15, 15, third}, {15, 18, third}, {15, 20, third},
			{18, 18, third}, {18, 20, third}, {20, 20, third},
		},
	},
	{
		labels: []Label{Hex, PG6, PGBar6, PG6m, PG622, PG6mm, PGBar62m, PG6mmm},
		entries: []entry{
			{0, 0, threeEighths}, {0, 1, quarterInvSqrt2}, {0, 6, threeEighths}, {0, 20, quarter},
			{1, 1, threeQuarters}, {1, 6, quarterInvSqrt2}, {1, 20, -halfInvSqrt2}, {2, 2, half},
			{2, 7, half}, {6, 6, threeEighths}, {6, 20, quarter}, {7, 7, half}, {11, 11, one},
			{15, 15, half}, {15, 18, half}, {18, 18, half}, {20, 20, half},
		},
	},
	{
		labels: []Label{PG3, PGBar3},
		entries: []entry{
			{0, 0, threeEighths}, {0, 1, quarterInvSqrt2}, {0, 6, threeEighths}, {0, 20, quarter},
			{1, 1, threeQuarters}, {1, 6, quarterInvSqrt2}, {1, 20, -halfInvSqrt2}, {2, 2, half},
			{2, 7, half}, {3, 3, quarter}, {3, 8, -quarter}, {3, 19, halfInvSqrt2},
			{4, 4, quarter}, {4, 9, -quarter}, {4, 17, -halfInvSqrt2}, {6, 6, threeEighths},
			{6, 20, quarter}, {7, 7, half}, {8, 8, quarter}, {8, 19, -halfInvSqrt2},
			{9, 9, quarter}, {9, 17, halfInvSqrt2}, {11, 11, one}, {15, 15, half}, {15, 18, half},
			{17, 17, half}, {18, 18, half}, {19, 19, half}, {20, 20, half},
		},
	},
	{
		labels: []Label{PG32, PG3m, PGBar3m},
		entries: []entry{
			{0, 0, threeEighths}, {0, 1, quarterInvSqrt2}, {0, 6, threeEighths}, {0, 20, quarter},
			{1, 1, threeQuarters}, {1, 6, quarterInvSqrt2}, {1, 20, -halfInvSqrt2}, {2, 2, half},
			{2, 7, half}, {3, 3, quarter}, {3, 8, -quarter}, {3, 19, halfInvSqrt2},
			{6, 6, threeEighths}, {6, 20, quarter}, {7, 7, half}, {8, 8, quarter},
			{8, 19, -halfInvSqrt2}, {11, 11, one}, {15, 15, half}, {15, 18, half}, {18, 18, half},
			{19, 19, half}, {20, 20, half},
		},
	},
	{
		labels: []Label{PG4, PGBar4, PG4m},
		entries: []entry{
			{0, 0, half}, {0, 6, half}, {1, 1, one}, {2, 2, half}, {2, 7, half}, {5, 5, half},
			{5, 10, -half}, {6, 6, half}, {7, 7, half}, {10, 10, half}, {11, 11, one},
			{15, 15, half}, {15, 18, half}, {18, 18, half}, {20, 20, one},
		},
	},
	{
		labels: []Label{PG422, PG4mm, PGBar42m, PG4mmm},
		entries: []entry{
			{0, 0, half}, {0, 6, half}, {1, 1, one}, {2, 2, half}, {2, 7, half}, {6, 6, half},
			{7, 7, half}, {11, 11, one}, {15, 15, half}, {15, 18, half}, {18, 18, half},
			{20, 20, one},
		},
	},
	{
		labels: []Label{Ort, PG222, PGmm2, PGmmm},
		entries: []entry{
			{0, 0, one}, {1, 1, one}, {2, 2, one}, {6, 6, one}, {7, 7, one}, {11, 11, one},
			{15, 15, one}, {18, 18, one}, {20, 20, one},
		},
	},
	{
		labels: []Label{Mon, PG2, PG2m, PGm, PGBar2},
		entries: []entry{
			{0, 0, one}, {1, 1, one}, {2, 2, one}, {4, 4, one}, {6, 6, one}, {7, 7, one},
			{9, 9, one}, {11, 11, one}, {13, 13, one}, {15, 15, one}, {17, 17, one},
			{18, 18, one}, {20, 20, one},
		},
	},
	{labels: []Label{Tic, PG1, PGBar1}, identity: true},
}

// latticeTables act on the row-major 9-vector. The six-fold axis along z
// leaves T11+T22, T33 and, without a vertical mirror or two-fold axis, the
// in-plane antisymmetric part T12-T21 invariant.
var latticeTables = []table{
	{
		labels: []Label{PG6, PGBar6, PG6m},
		entries: []entry{
			{0, 0, half}, {0, 4, half}, {4, 4, half}, {8, 8, one},
			{1, 1, half}, {1, 3, -half}, {3, 3, half},
		},
	},
	{
		labels: []Label{Hex, PG622, PG6mm, PGBar62m, PG6mmm},
		entries: []entry{
			{0, 0, half}, {0, 4, half}, {4, 4, half}, {8, 8, one},
		},
	},
	{labels: []Label{Tic, PG1, PGBar1}, identity: true},
}

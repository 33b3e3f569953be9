package filter

// Kernel3 is a 3x3 convolution mask indexed [row][column].
type Kernel3 [3][3]int

// PrewittX responds to horizontal changes in intensity (vertical edges).
var PrewittX = Kernel3{
	{1, 0, -1},
	{1, 0, -1},
	{1, 0, -1},
}

// PrewittY responds to vertical changes in intensity (horizontal edges).
var PrewittY = Kernel3{
	{1, 1, 1},
	{0, 0, 0},
	{-1, -1, -1},
}

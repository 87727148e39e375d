package main

import "github.com/taigrr/wireclip/pkg/models"

// demoHouse is the model drawn when no file is given: a unit house with a
// pitched roof, a door and a chimney.
func demoHouse() *models.Mesh {
	return models.NewGeneric("house",
		[][3]float64{
			// Walls
			{-1, -1, -1}, {1, -1, -1}, {1, 0.5, -1}, {-1, 0.5, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 0.5, 1}, {-1, 0.5, 1},
			// Roof ridge
			{-1, 1.4, 0}, {1, 1.4, 0},
			// Door
			{-0.3, -1, 1}, {0.3, -1, 1}, {0.3, 0, 1}, {-0.3, 0, 1},
			// Chimney
			{0.5, 0.7, -0.45}, {0.8, 0.7, -0.45}, {0.8, 1.3, -0.45}, {0.5, 1.3, -0.45},
		},
		[][]int{
			{0, 1, 2, 3, 0},
			{4, 5, 6, 7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
			{3, 8, 7}, {2, 9, 6},
			{8, 9},
			{10, 13, 12, 11},
			{14, 17, 16, 15},
		},
	)
}

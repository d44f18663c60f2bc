package asset

// DefaultLevelYAML is the reference level: an 8x8 bordered room with two pairs of pillars
// Coordinates are in grid units, x = column, y = row; heading is in degrees, 0 = +x, 90 = +y
const DefaultLevelYAML = `
name: reference
rows:
  - "########"
  - "#......#"
  - "#.#..#.#"
  - "#......#"
  - "#......#"
  - "#.#..#.#"
  - "#......#"
  - "########"
player:
  x: 3
  y: 3
  heading: 0
enemy:
  x: 6
  y: 6
`

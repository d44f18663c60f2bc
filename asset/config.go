package asset

// DefaultConfigYAML documents every setting with its default value
// Written out by -write-config as a starting point for edits
const DefaultConfigYAML = `# vi-raycaster configuration
screen:
  width: 0        # 0 = terminal width
  height: 0       # 0 = terminal height minus status line
  fov_degrees: 60

player:
  move_step: 0.1
  turn_step: 0.1  # radians

enemy:
  chase_step: 0.05
  path_step: 0.03
  arrival_radius: 0.1
  catch_radius: 0.25

timing:
  tick: 100ms
  poll: 10ms

audio:
  enabled: true
  volume: 0.6

maze:
  enabled: false
  width: 15
  height: 15
  braiding: 0.3
  seed: 0

# keys:
#   runes:
#     k: forward
#     j: backward
#     w: none
#   special:
#     ctrl+q: quit
`

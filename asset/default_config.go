package asset

// DefaultConfigTOML is the commented default configuration written by -write-config
// Values mirror config.Default()
const DefaultConfigTOML = `
# === Galaxy population ===
[galaxy]
# 0 seeds from the clock
seed = 0
bodies = 5000
twinkles = 200
rogues = 30

# === Orbital motion ===
[kinematics]
# "kepler" falls off as sqrt(M/r); "flat" holds a halo speed floor
curve = "kepler"
mass = 2500.0
gain = 1.5
radius_floor = 10.0
halo_speed_floor = 4.0
time_acceleration = 5.0
sim_step = 0.005

# === View ===
[camera]
distance = 600.0
focal = 500.0
reference_height = 800.0
tilt = 0.9
spin = 0.0
auto_spin = 0.002
drag_sensitivity = 0.005

# === Light bending near the compact body ===
[lens]
enabled = true
strength = 3500.0
normalization = 5.0

# === Output ===
[render]
width = 1200
height = 800
legend = true

# Optional companion images, keyed by companion name
# [render.sprites]
# "Andromeda" = "assets/andromeda.png"

# === Ambient soundtrack ===
[audio]
enabled = true
# Base-2 exponent, -2.5 is roughly 18% of full scale
volume = -2.5
`

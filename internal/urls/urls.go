package urls

// External addresses referenced by the dashboard and the CLI.

// Project is the source repository, shown in the header band.
const Project = "github.com/jeekhub/jeek"

// ProjectFull is the browsable form of Project.
const ProjectFull = "https://github.com/jeekhub/jeek"

// WeatherService is the default weather endpoint. It serves JSON
// reports at /<location>?format=j1 and auto-detects the location
// from the caller's address when none is given.
const WeatherService = "https://wttr.in"

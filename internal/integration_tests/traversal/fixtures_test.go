package traversal

// sampleHCL is the reference maze: 3 is shared by 1 and 6, 5 by 3 and 7.
const sampleHCL = `
maze {
  root = "0"
}

leaf "2" {}
leaf "4" {}
leaf "5" {}
leaf "8" {}

branch "3" {
  left  = node["4"]
  right = node["5"]
}
branch "1" {
  left  = node["2"]
  right = node["3"]
}
branch "7" {
  left  = node["5"]
  right = node["8"]
}
branch "6" {
  left  = node["3"]
  right = node["7"]
}
branch "0" {
  left  = node["1"]
  right = node["6"]
}
`

// chainHCL shares every branch between both children of its parent.
const chainHCL = `
maze {
  root = "a"
}

branch "a" {
  left  = node["b"]
  right = node["b"]
}
branch "b" {
  left  = node["c"]
  right = node["c"]
}
branch "c" {
  left  = node["z"]
  right = node["z"]
}
leaf "z" {}
`

var sampleTrace = []string{"0", "1", "2", "3", "4", "5", "6", "3", "7", "5", "8"}

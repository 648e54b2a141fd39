package aacboard

const Version = "0.1.0"

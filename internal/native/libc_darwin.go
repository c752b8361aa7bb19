package native

const libcName = "/usr/lib/libSystem.B.dylib"

package native

const libcName = "libc.so.7"
